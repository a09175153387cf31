package qrsession_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession"
	qrsessionerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession/errors"
	qrMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession/mock"
)

const testBrandID = "0b4f9c1e-2a7d-4f6b-8c3a-5e6f7a8b9c0d"

func setupQRRouter(h *qrsession.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testBrandID)
		c.Set("role", "BRAND")
	})
	router.POST("/gigs/:id/qr-sessions", h.Generate)
	router.GET("/gigs/:id/qr-sessions/active", h.GetActive)
	router.DELETE("/qr-sessions/:sessionId", h.Revoke)
	return router
}

func TestHandler_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := qrMock.NewMockService(ctrl)
	router := setupQRRouter(qrsession.NewHandler(mockService))

	t.Run("Success Returns 201", func(t *testing.T) {
		mockService.EXPECT().
			Generate(gomock.Any(), "gig-1", testBrandID, gomock.Any()).
			Return(qrsession.SessionResponse{
				SessionID: "sess-1",
				GigID:     "gig-1",
				Token:     "tok",
				IsActive:  true,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/qr-sessions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "tok", resp["data"].(map[string]interface{})["token"])
	})

	t.Run("Out Of Window Returns 422 With Details", func(t *testing.T) {
		mockService.EXPECT().
			Generate(gomock.Any(), "gig-1", testBrandID, gomock.Any()).
			Return(qrsession.SessionResponse{}, qrsessionerrors.ErrOutOfWindow.WithDetails(qrsession.WindowDetails{
				WindowStart: "2026-03-14T18:00:00Z",
				WindowEnd:   "2026-03-14T18:10:00Z",
			}))

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/qr-sessions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		errObj := resp["error"].(map[string]interface{})
		assert.Equal(t, "OUT_OF_WINDOW", errObj["code"])
		assert.Equal(t, "2026-03-14T18:10:00Z", errObj["details"].(map[string]interface{})["window_end"])
	})

	t.Run("Not Owner Returns 403", func(t *testing.T) {
		mockService.EXPECT().
			Generate(gomock.Any(), "gig-1", testBrandID, gomock.Any()).
			Return(qrsession.SessionResponse{}, qrsessionerrors.ErrNotGigOwner)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/qr-sessions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := qrMock.NewMockService(ctrl)
	router := setupQRRouter(qrsession.NewHandler(mockService))

	t.Run("No Active Session Returns 404", func(t *testing.T) {
		mockService.EXPECT().
			GetActive(gomock.Any(), "gig-1", testBrandID).
			Return(qrsession.SessionResponse{}, qrsessionerrors.ErrNoActiveSession)

		req := httptest.NewRequest(http.MethodGet, "/gigs/gig-1/qr-sessions/active", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := qrMock.NewMockService(ctrl)
	router := setupQRRouter(qrsession.NewHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Revoke(gomock.Any(), "sess-1", testBrandID).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/qr-sessions/sess-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, false, resp["data"].(map[string]interface{})["is_active"])
	})
}
