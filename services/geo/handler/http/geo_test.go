package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/kemana-app/kemana/services/geo/mocks"
)

func TestResolveLocation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeoUC := mocks.NewMockGeoUC(ctrl)
	geoHandler := NewGeoHandler(mockGeoUC)

	e := echo.New()
	requestBody := `{"text": "https://goo.gl/abc123"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/locations/resolve", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolved := models.ResolvedLocation{
		Coordinate: models.Coordinate{Latitude: 55.751244, Longitude: 37.618423},
		Source:     models.HeuristicPathToken,
	}
	mockGeoUC.EXPECT().Resolve(gomock.Any(), "https://goo.gl/abc123").Return(resolved, true)

	// Act
	err := geoHandler.ResolveLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool                    `json:"success"`
		Data    models.ResolvedLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.InDelta(t, 55.751244, response.Data.Coordinate.Latitude, 0.000001)
}

func TestResolveLocation_NotRecognized(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeoUC := mocks.NewMockGeoUC(ctrl)
	geoHandler := NewGeoHandler(mockGeoUC)

	e := echo.New()
	requestBody := `{"text": "see you at the usual place"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/locations/resolve", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockGeoUC.EXPECT().Resolve(gomock.Any(), "see you at the usual place").Return(models.ResolvedLocation{}, false)

	// Act
	err := geoHandler.ResolveLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResolveLocation_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geoHandler := NewGeoHandler(mocks.NewMockGeoUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/locations/resolve", strings.NewReader(`{"text": ""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := geoHandler.ResolveLocation(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveLocation_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	geoHandler := NewGeoHandler(mocks.NewMockGeoUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/locations/resolve", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := geoHandler.ResolveLocation(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
