package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/drivers"
	"github.com/piresc/flashfood/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = models.Coordinate{Latitude: 10.826411, Longitude: 106.617353}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDriversHandler_SearchNearby_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDriverUC(ctrl)
	handler := NewDriversHandler(mockUC)

	expectedReq := models.NearbyDriversRequest{
		Center:       center,
		RadiusMeters: 1500,
		TotalDrivers: 3,
		SessionID:    "s1",
		CaptureOnce:  true,
	}
	mockUC.EXPECT().
		SearchNearbyDrivers(gomock.Any(), expectedReq).
		Return(&models.NearbyDriversResult{Center: center, RadiusMeters: 1500}, nil)

	c, rec := newContext(http.MethodGet,
		"/drivers/nearby?lat=10.826411&lng=106.617353&radius=1500&total=3&session_id=s1&capture_once=true", "")

	require.NoError(t, handler.SearchNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                       `json:"success"`
		Data    models.NearbyDriversResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1500.0, body.Data.RadiusMeters)
}

func TestDriversHandler_SearchNearby_BadQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewDriversHandler(mocks.NewMockDriverUC(ctrl))

	for _, target := range []string{
		"/drivers/nearby?lng=106.6",
		"/drivers/nearby?lat=abc&lng=106.6",
		"/drivers/nearby?lat=10.8&lng=106.6&total=many",
	} {
		c, rec := newContext(http.MethodGet, target, "")
		require.NoError(t, handler.SearchNearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestDriversHandler_SearchNearby_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid coordinate", drivers.ErrInvalidCoordinate, http.StatusBadRequest},
		{"session required", drivers.ErrSessionRequired, http.StatusBadRequest},
		{"storage failure", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDriverUC(ctrl)
			mockUC.EXPECT().SearchNearbyDrivers(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newContext(http.MethodGet, "/drivers/nearby?lat=95&lng=106.6", "")
			require.NoError(t, NewDriversHandler(mockUC).SearchNearby(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDriversHandler_FindWithin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDriverUC(ctrl)
	mockUC.EXPECT().
		FindDriversWithinRadius(gomock.Any(), center, 800.0).
		Return([]models.DriverRecord{{ID: "DRI_1", Location: center}}, nil)

	c, rec := newContext(http.MethodGet, "/drivers/within?lat=10.826411&lng=106.617353&radius=800", "")
	require.NoError(t, NewDriversHandler(mockUC).FindWithin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "DRI_1")

	c, rec = newContext(http.MethodGet, "/drivers/within?lat=10.826411&lng=106.617353", "")
	require.NoError(t, NewDriversHandler(mockUC).FindWithin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDriversHandler_UpdateLocation(t *testing.T) {
	t.Run("own location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockDriverUC(ctrl)
		mockUC.EXPECT().UpdateDriverLocation(gomock.Any(), "DRI_1", center).Return(nil)

		c, rec := newContext(http.MethodPut, "/drivers/DRI_1/location", `{"latitude":10.826411,"longitude":106.617353}`)
		c.SetParamNames("id")
		c.SetParamValues("DRI_1")
		c.Set(middleware.ContextUserID, "DRI_1")

		require.NoError(t, NewDriversHandler(mockUC).UpdateLocation(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, rec := newContext(http.MethodPut, "/drivers/DRI_2/location", `{"latitude":1,"longitude":1}`)
		c.SetParamNames("id")
		c.SetParamValues("DRI_2")
		c.Set(middleware.ContextUserID, "DRI_1")

		require.NoError(t, NewDriversHandler(mocks.NewMockDriverUC(ctrl)).UpdateLocation(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, rec := newContext(http.MethodPut, "/drivers/DRI_1/location", `{"latitude":`)
		c.SetParamNames("id")
		c.SetParamValues("DRI_1")
		c.Set(middleware.ContextUserID, "DRI_1")

		require.NoError(t, NewDriversHandler(mocks.NewMockDriverUC(ctrl)).UpdateLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDriversHandler_GetLocation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDriverUC(ctrl)
	mockUC.EXPECT().GetDriverLocation(gomock.Any(), "DRI_9").Return(nil, drivers.ErrDriverNotFound)

	c, rec := newContext(http.MethodGet, "/drivers/DRI_9/location", "")
	c.SetParamNames("id")
	c.SetParamValues("DRI_9")

	require.NoError(t, NewDriversHandler(mockUC).GetLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDriversHandler_RemoveDriver(t *testing.T) {
	t.Run("driver goes offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockDriverUC(ctrl)
		mockUC.EXPECT().RemoveDriver(gomock.Any(), "DRI_1").Return(nil)

		c, rec := newContext(http.MethodDelete, "/drivers/DRI_1/location", "")
		c.SetParamNames("id")
		c.SetParamValues("DRI_1")
		c.Set(middleware.ContextUserID, "DRI_1")

		require.NoError(t, NewDriversHandler(mockUC).GoOffline(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cannot remove another driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, rec := newContext(http.MethodDelete, "/drivers/DRI_2/location", "")
		c.SetParamNames("id")
		c.SetParamValues("DRI_2")
		c.Set(middleware.ContextUserID, "DRI_1")

		require.NoError(t, NewDriversHandler(mocks.NewMockDriverUC(ctrl)).GoOffline(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("internal removal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockDriverUC(ctrl)
		mockUC.EXPECT().RemoveDriver(gomock.Any(), "DRI_3").Return(nil)

		c, rec := newContext(http.MethodDelete, "/internal/drivers/DRI_3/location", "")
		c.SetParamNames("id")
		c.SetParamValues("DRI_3")

		require.NoError(t, NewDriversHandler(mockUC).RemoveDriver(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
