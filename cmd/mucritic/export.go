package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/features"
)

var (
	exportKind        string
	exportIDs         string
	exportRaw         bool
	exportFileName    string
	exportSkipMissing bool
	exportManifestDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export aggregation vectors to CSV",
	Long: `Export aggregation vectors to CSV under export.base_dir.

Either pass --kind and --ids for a single file, or --manifest to run every
job described in a directory of YAML files (defaults to export.manifest_dir).

Examples:
  mucritic export --kind review --ids 1,2,3 --skip-missing
  mucritic export --kind album --ids 7 --raw --file albums_raw
  mucritic export --manifest ./config/exports`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportKind, "kind", "", "Aggregation kind (track, artist, album, review, profile)")
	exportCmd.Flags().StringVar(&exportIDs, "ids", "", "Comma-separated entity ids")
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "Skip normalization")
	exportCmd.Flags().StringVar(&exportFileName, "file", "", "Output file name without extension (defaults to the kind)")
	exportCmd.Flags().BoolVar(&exportSkipMissing, "skip-missing", false, "Skip ids that do not exist instead of failing")
	exportCmd.Flags().StringVar(&exportManifestDir, "manifest", "", "Run the export jobs in this directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if exportKind == "" {
		dir := exportManifestDir
		if dir == "" {
			dir = cfg.Export.ManifestDir
		}
		results, err := a.service.RunManifest(cmd.Context(), dir)
		if err != nil {
			return err
		}
		for _, res := range results {
			printExport(cmd, res)
		}
		return nil
	}

	kind, err := coreagg.ParseKind(exportKind)
	if err != nil {
		return err
	}
	ids, err := parseIDs(exportIDs)
	if err != nil {
		return err
	}

	res, err := a.service.Export(cmd.Context(), features.ExportRequest{
		Kind:        kind,
		IDs:         ids,
		Normalized:  !exportRaw,
		FileName:    exportFileName,
		SkipMissing: exportSkipMissing,
	})
	if err != nil {
		return err
	}
	printExport(cmd, *res)
	return nil
}

func printExport(cmd *cobra.Command, res features.ExportResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d rows\t%d skipped\t(run %s)\n", res.Path, res.Rows, len(res.Skipped), res.RunID)
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("--ids is required with --kind")
	}
	return ids, nil
}
