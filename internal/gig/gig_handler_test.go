package gig_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	gigerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig/errors"
	gigMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig/mock"
)

const testBrandID = "0b4f9c1e-2a7d-4f6b-8c3a-5e6f7a8b9c0d"

func setupGigRouter(h *gig.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testBrandID)
		c.Set("role", "BRAND")
	})
	router.POST("/gigs", h.Create)
	router.POST("/gigs/:id/publish", h.Publish)
	router.POST("/gigs/:id/apply", h.Apply)
	router.PATCH("/applications/:applicationId", h.Decide)
	router.POST("/gigs/:id/complete", h.Complete)
	return router
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gigMock.NewMockService(ctrl)
	router := setupGigRouter(gig.NewHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		reqBody := gig.CreateGigRequest{
			Title:         "Product Launch",
			StartTime:     "2026-03-14T18:00:00Z",
			DurationHours: 4,
			PayRate:       50,
			TotalGigDays:  3,
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Create(gomock.Any(), testBrandID, reqBody).
			Return(gig.GigResponse{
				Code:   "GIG-00007",
				Title:  reqBody.Title,
				Status: gig.StatusDraft,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/gigs", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "GIG-00007", resp["data"].(map[string]interface{})["code"])
	})

	t.Run("Missing Title Fails Binding", func(t *testing.T) {
		body := []byte(`{"start_time":"2026-03-14T18:00:00Z","duration_hours":4,"pay_rate":50,"total_gig_days":1}`)

		req := httptest.NewRequest(http.MethodPost, "/gigs", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gigMock.NewMockService(ctrl)
	router := setupGigRouter(gig.NewHandler(mockService))

	t.Run("Duplicate Maps To 409", func(t *testing.T) {
		mockService.EXPECT().
			Apply(gomock.Any(), "gig-1", testBrandID).
			Return(gig.ApplicationResponse{}, gigerrors.ErrAlreadyApplied)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/apply", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Success Returns 201", func(t *testing.T) {
		mockService.EXPECT().
			Apply(gomock.Any(), "gig-1", testBrandID).
			Return(gig.ApplicationResponse{GigID: "gig-1", Status: gig.ApplicationPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/apply", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gigMock.NewMockService(ctrl)
	router := setupGigRouter(gig.NewHandler(mockService))

	t.Run("Approve", func(t *testing.T) {
		mockService.EXPECT().
			Decide(gomock.Any(), "app-1", testBrandID, true).
			Return(gig.ApplicationResponse{ID: "app-1", Status: gig.ApplicationApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/applications/app-1", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Already Decided Maps To 409", func(t *testing.T) {
		mockService.EXPECT().
			Decide(gomock.Any(), "app-1", testBrandID, false).
			Return(gig.ApplicationResponse{}, gigerrors.ErrApplicationNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/applications/app-1", bytes.NewBufferString(`{"approve":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gigMock.NewMockService(ctrl)
	router := setupGigRouter(gig.NewHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Complete(gomock.Any(), "gig-1", testBrandID).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/complete", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, gig.StatusCompleted, resp["data"].(map[string]interface{})["status"])
	})

	t.Run("Draft Gig Maps To 409", func(t *testing.T) {
		mockService.EXPECT().
			Complete(gomock.Any(), "gig-1", testBrandID).
			Return(gigerrors.ErrGigNotActive)

		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/complete", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
