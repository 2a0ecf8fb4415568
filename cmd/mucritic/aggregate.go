package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/features"
)

var (
	aggregateRaw       bool
	aggregateSpotifyID string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <kind> [id]",
	Short: "Aggregate one entity and print it as JSON",
	Long: `Aggregate one stored entity, or a catalog-only track, and print the result.

Kinds: track, artist, album, review, profile.

Examples:
  mucritic aggregate review 42
  mucritic aggregate album 7 --raw
  mucritic aggregate track --spotify-id 3n3Ppam7vgaVa1iaRUc9Lp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAggregate,
}

func init() {
	aggregateCmd.Flags().BoolVar(&aggregateRaw, "raw", false, "Skip normalization")
	aggregateCmd.Flags().StringVar(&aggregateSpotifyID, "spotify-id", "", "Resolve a track through the Spotify catalog instead of the database")
	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	kind, err := coreagg.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var res *features.Result
	switch {
	case aggregateSpotifyID != "":
		if kind != coreagg.KindTrack {
			return fmt.Errorf("--spotify-id only applies to tracks")
		}
		res, err = a.service.AggregateCatalogTrack(cmd.Context(), aggregateSpotifyID, !aggregateRaw)
	case len(args) == 2:
		id, perr := strconv.ParseInt(args[1], 10, 64)
		if perr != nil {
			return fmt.Errorf("invalid id %q: %w", args[1], perr)
		}
		res, err = a.service.Aggregate(cmd.Context(), kind, id, !aggregateRaw)
	default:
		return fmt.Errorf("an id or --spotify-id is required")
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
