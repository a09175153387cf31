package rating_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating"
	ratingerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating/errors"
	ratingMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating/mock"
)

const testBrandID = "0b4f9c1e-2a7d-4f6b-8c3a-5e6f7a8b9c0d"

func setupRatingRouter(h *rating.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testBrandID)
		c.Set("role", "BRAND")
	})
	router.POST("/gigs/:id/ratings", h.Submit)
	router.GET("/gigs/:id/ratings/:usherId", h.GetForGig)
	router.GET("/ushers/:usherId/aggregate", h.GetAggregate)
	return router
}

func TestHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := ratingMock.NewMockService(ctrl)
	router := setupRatingRouter(rating.NewHandler(mockService))

	usherID := "7f3a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8"

	submit := func(body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/gigs/gig-1/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Success", func(t *testing.T) {
		reqBody := rating.SubmitRatingRequest{
			UsherID:        usherID,
			BrandRating:    4,
			AttendanceDays: 3,
			TotalGigDays:   4,
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Submit(gomock.Any(), "gig-1", testBrandID, reqBody).
			Return(rating.RatingResponse{
				GigID:       "gig-1",
				UsherID:     usherID,
				FinalRating: 3.9,
			}, nil)

		w := submit(body)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, 3.9, resp["data"].(map[string]interface{})["final_rating"])
	})

	t.Run("Brand Rating Out Of Range Fails Binding", func(t *testing.T) {
		body := []byte(`{"usher_id":"` + usherID + `","brand_rating":6,"total_gig_days":4}`)
		w := submit(body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Non-UUID Usher Fails Binding", func(t *testing.T) {
		body := []byte(`{"usher_id":"nope","brand_rating":4,"total_gig_days":4}`)
		w := submit(body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Owner Maps To 403", func(t *testing.T) {
		reqBody := rating.SubmitRatingRequest{
			UsherID:      usherID,
			BrandRating:  4,
			TotalGigDays: 4,
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Submit(gomock.Any(), "gig-1", testBrandID, reqBody).
			Return(rating.RatingResponse{}, ratingerrors.ErrNotGigOwner)

		w := submit(body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_GetAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := ratingMock.NewMockService(ctrl)
	router := setupRatingRouter(rating.NewHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			GetAggregate(gomock.Any(), "usher-1").
			Return(rating.AggregateResponse{UsherID: "usher-1", OverallRating: 4.45}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ushers/usher-1/aggregate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, 4.45, resp["data"].(map[string]interface{})["overall_rating"])
	})
}

func TestHandler_GetForGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := ratingMock.NewMockService(ctrl)
	router := setupRatingRouter(rating.NewHandler(mockService))

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().
			GetForGig(gomock.Any(), "gig-1", "usher-1").
			Return(rating.RatingResponse{}, ratingerrors.ErrRatingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/gigs/gig-1/ratings/usher-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
