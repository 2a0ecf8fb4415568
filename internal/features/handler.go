package features

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	httperr "github.com/mucritic/mucritic/internal/core/errors"
)

// RegisterRoutes registers the aggregation and export routes on r.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/aggregations/:kind/:id", s.HandleAggregate)
	r.GET("/v1/fields/:kind", s.HandleFields)
	r.GET("/v1/catalog/tracks/:spotify_id", s.HandleCatalogTrack)
	r.POST("/v1/exports", s.HandleExport)
}

// HandleAggregate handles GET /v1/aggregations/:kind/:id?normalized=
func (s *Service) HandleAggregate(c *gin.Context) {
	kind, ok := bindKind(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid path parameters",
			Details:   "id must be a positive integer",
		})
		return
	}
	normalized, ok := bindNormalized(c)
	if !ok {
		return
	}

	res, err := s.Aggregate(c.Request.Context(), kind, id, normalized)
	if err != nil {
		writeError(c, err, "Failed to aggregate entity")
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleFields handles GET /v1/fields/:kind
func (s *Service) HandleFields(c *gin.Context) {
	kind, ok := bindKind(c)
	if !ok {
		return
	}
	fields, err := s.Fields(kind)
	if err != nil {
		writeError(c, err, "Failed to list fields")
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "fields": fields})
}

// HandleCatalogTrack handles GET /v1/catalog/tracks/:spotify_id?normalized=
func (s *Service) HandleCatalogTrack(c *gin.Context) {
	normalized, ok := bindNormalized(c)
	if !ok {
		return
	}
	res, err := s.AggregateCatalogTrack(c.Request.Context(), c.Param("spotify_id"), normalized)
	if err != nil {
		writeError(c, err, "Failed to aggregate catalog track")
		return
	}
	c.JSON(http.StatusOK, res)
}

// HandleExport handles POST /v1/exports
func (s *Service) HandleExport(c *gin.Context) {
	var body struct {
		Kind        string  `json:"kind" binding:"required"`
		IDs         []int64 `json:"ids" binding:"required,min=1"`
		Normalized  *bool   `json:"normalized"`
		FileName    string  `json:"file_name"`
		SkipMissing bool    `json:"skip_missing"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid export request",
			Details:   err.Error(),
		})
		return
	}

	normalized := true
	if body.Normalized != nil {
		normalized = *body.Normalized
	}

	res, err := s.Export(c.Request.Context(), ExportRequest{
		Kind:        coreagg.Kind(body.Kind),
		IDs:         body.IDs,
		Normalized:  normalized,
		FileName:    body.FileName,
		SkipMissing: body.SkipMissing,
	})
	if err != nil {
		writeError(c, err, "Failed to export aggregations")
		return
	}
	c.JSON(http.StatusOK, res)
}

func bindKind(c *gin.Context) (coreagg.Kind, bool) {
	kind, err := coreagg.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnknownKindError,
			Message:   "Unknown aggregation kind",
			Details:   err.Error(),
		})
		return "", false
	}
	return kind, true
}

// bindNormalized reads ?normalized=, defaulting to true.
func bindNormalized(c *gin.Context) (bool, bool) {
	raw := c.Query("normalized")
	if raw == "" {
		return true, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   "normalized must be true or false",
		})
		return false, false
	}
	return v, true
}

func writeError(c *gin.Context, err error, message string) {
	status, errorType := http.StatusInternalServerError, httperr.HttpInternalError
	switch {
	case errors.Is(err, httperr.ErrUnknownKind):
		status, errorType = http.StatusBadRequest, httperr.HttpUnknownKindError
	case errors.Is(err, ErrInvalidRequest):
		status, errorType = http.StatusBadRequest, httperr.HttpInvalidRequestError
	case errors.Is(err, httperr.ErrNotFound):
		status, errorType = http.StatusNotFound, httperr.HttpNotFoundError
	case errors.Is(err, httperr.ErrDataIntegrity):
		status, errorType = http.StatusUnprocessableEntity, httperr.HttpDataIntegrityError
	case errors.Is(err, httperr.ErrExternalLookup):
		status, errorType = http.StatusBadGateway, httperr.HttpExternalLookupError
	}
	c.JSON(status, httperr.ErrorResponse{
		ErrorType: errorType,
		Message:   message,
		Details:   err.Error(),
	})
}
