package features

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mucritic/mucritic/internal/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	httperr "github.com/mucritic/mucritic/internal/core/errors"
	storagemocks "github.com/mucritic/mucritic/internal/mocks/storage"
)

func TestService_Handlers_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		method            string
		target            string
		body              string
		catalog           aggregation.TrackResolver
		configure         func(repo *storagemocks.Repository)
		expectedStatus    int
		expectedErrorType string
	}{
		{
			name:           "aggregation returns 200",
			method:         http.MethodGet,
			target:         "/v1/aggregations/artist/2?normalized=false",
			expectedStatus: http.StatusOK,
			configure: func(repo *storagemocks.Repository) {
				repo.EXPECT().FetchArtist(mock.Anything, int64(2)).Return(testArtist(), nil).Once()
			},
		},
		{
			name:              "unknown kind returns 400",
			method:            http.MethodGet,
			target:            "/v1/aggregations/song/1",
			expectedStatus:    http.StatusBadRequest,
			expectedErrorType: httperr.HttpUnknownKindError,
		},
		{
			name:              "bad id returns 400",
			method:            http.MethodGet,
			target:            "/v1/aggregations/album/abc",
			expectedStatus:    http.StatusBadRequest,
			expectedErrorType: httperr.HttpInvalidRequestError,
		},
		{
			name:              "bad normalized flag returns 400",
			method:            http.MethodGet,
			target:            "/v1/aggregations/album/1?normalized=maybe",
			expectedStatus:    http.StatusBadRequest,
			expectedErrorType: httperr.HttpInvalidRequestError,
		},
		{
			name:              "missing entity returns 404",
			method:            http.MethodGet,
			target:            "/v1/aggregations/profile/7",
			expectedStatus:    http.StatusNotFound,
			expectedErrorType: httperr.HttpNotFoundError,
			configure: func(repo *storagemocks.Repository) {
				repo.EXPECT().FetchProfile(mock.Anything, int64(7)).
					Return(nil, fmt.Errorf("profile 7: %w", httperr.ErrNotFound)).Once()
			},
		},
		{
			name:              "track without features returns 422",
			method:            http.MethodGet,
			target:            "/v1/aggregations/track/3",
			expectedStatus:    http.StatusUnprocessableEntity,
			expectedErrorType: httperr.HttpDataIntegrityError,
			configure: func(repo *storagemocks.Repository) {
				repo.EXPECT().FetchTrack(mock.Anything, int64(3)).Return(&entity.Track{ID: 3}, nil)
			},
		},
		{
			name:              "catalog failure returns 502",
			method:            http.MethodGet,
			target:            "/v1/catalog/tracks/unknown",
			catalog:           stubCatalog{},
			expectedStatus:    http.StatusBadGateway,
			expectedErrorType: httperr.HttpExternalLookupError,
		},
		{
			name:              "repository failure returns 500",
			method:            http.MethodGet,
			target:            "/v1/aggregations/album/1",
			expectedStatus:    http.StatusInternalServerError,
			expectedErrorType: httperr.HttpInternalError,
			configure: func(repo *storagemocks.Repository) {
				repo.EXPECT().FetchAlbum(mock.Anything, int64(1)).Return(nil, errors.New("connection reset")).Once()
			},
		},
		{
			name:           "fields returns 200",
			method:         http.MethodGet,
			target:         "/v1/fields/review",
			expectedStatus: http.StatusOK,
		},
		{
			name:              "export without ids returns 400",
			method:            http.MethodPost,
			target:            "/v1/exports",
			body:              `{"kind":"track","ids":[]}`,
			expectedStatus:    http.StatusBadRequest,
			expectedErrorType: httperr.HttpInvalidRequestError,
		},
		{
			name:              "export of unknown kind returns 400",
			method:            http.MethodPost,
			target:            "/v1/exports",
			body:              `{"kind":"song","ids":[1]}`,
			expectedStatus:    http.StatusBadRequest,
			expectedErrorType: httperr.HttpUnknownKindError,
		},
		{
			name:           "export returns 200",
			method:         http.MethodPost,
			target:         "/v1/exports",
			body:           `{"kind":"track","ids":[10,12],"skip_missing":true}`,
			expectedStatus: http.StatusOK,
			configure:      expectTracks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := storagemocks.NewRepository(t)
			if tt.configure != nil {
				tt.configure(repo)
			}
			svc := newTestService(t, repo, tt.catalog)

			r := gin.New()
			svc.RegisterRoutes(r)

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedErrorType != "" {
				var resp httperr.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, tt.expectedErrorType, resp.ErrorType)
			}
		})
	}
}

func TestService_HandleAggregate_Body(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := storagemocks.NewRepository(t)
	repo.EXPECT().FetchArtist(mock.Anything, int64(2)).Return(testArtist(), nil).Once()
	svc := newTestService(t, repo, nil)

	r := gin.New()
	svc.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/aggregations/artist/2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Kind       string    `json:"kind"`
		ID         int64     `json:"id"`
		Normalized bool      `json:"normalized"`
		Fields     []string  `json:"fields"`
		Values     []float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "artist", body.Kind)
	require.Equal(t, int64(2), body.ID)
	require.True(t, body.Normalized)
	require.Len(t, body.Fields, len(body.Values))
}
