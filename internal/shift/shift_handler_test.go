package shift_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shift"
	shifterrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shift/errors"
	shiftMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shift/mock"
)

const testUsherID = "a2b2e7c8-8d6a-4c3f-9e8b-1f2a3b4c5d6e"

func setupShiftRouter(h *shift.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testUsherID)
		c.Set("role", "USHER")
	})
	router.POST("/shifts/scan", h.Scan)
	router.GET("/shifts", h.GetMine)
	router.GET("/shifts/:gigId", h.GetOne)
	return router
}

func TestHandler_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := shiftMock.NewMockService(ctrl)
	router := setupShiftRouter(shift.NewHandler(mockService))

	postScan := func(body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/shifts/scan", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Check-In Returns 201", func(t *testing.T) {
		mockService.EXPECT().
			Scan(gomock.Any(), "tok", testUsherID, shift.ActionCheckIn, gomock.Any()).
			Return(shift.ShiftResponse{
				GigID:            "gig-1",
				UsherID:          testUsherID,
				AttendanceStatus: shift.StatusCheckedIn,
			}, nil)

		body, _ := json.Marshal(shift.ScanRequest{Token: "tok", Action: shift.ActionCheckIn})
		w := postScan(body)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, shift.StatusCheckedIn, resp["data"].(map[string]interface{})["attendance_status"])
	})

	t.Run("Check-Out Returns 200", func(t *testing.T) {
		hours := 4.0
		mockService.EXPECT().
			Scan(gomock.Any(), "tok", testUsherID, shift.ActionCheckOut, gomock.Any()).
			Return(shift.ShiftResponse{AttendanceStatus: shift.StatusCheckedOut, HoursWorked: &hours}, nil)

		body, _ := json.Marshal(shift.ScanRequest{Token: "tok", Action: shift.ActionCheckOut})
		w := postScan(body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown Action Fails Binding", func(t *testing.T) {
		w := postScan([]byte(`{"token":"tok","action":"pause"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing Token Fails Binding", func(t *testing.T) {
		w := postScan([]byte(`{"action":"check_in"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Already Checked In Maps To 409", func(t *testing.T) {
		mockService.EXPECT().
			Scan(gomock.Any(), "tok", testUsherID, shift.ActionCheckIn, gomock.Any()).
			Return(shift.ShiftResponse{}, shifterrors.ErrAlreadyCheckedIn)

		body, _ := json.Marshal(shift.ScanRequest{Token: "tok", Action: shift.ActionCheckIn})
		w := postScan(body)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "CONFLICT", resp["error"].(map[string]interface{})["code"])
	})

	t.Run("Not Approved Maps To 403", func(t *testing.T) {
		mockService.EXPECT().
			Scan(gomock.Any(), "tok", testUsherID, shift.ActionCheckIn, gomock.Any()).
			Return(shift.ShiftResponse{}, shifterrors.ErrNotApprovedForGig)

		body, _ := json.Marshal(shift.ScanRequest{Token: "tok", Action: shift.ActionCheckIn})
		w := postScan(body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_GetOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := shiftMock.NewMockService(ctrl)
	router := setupShiftRouter(shift.NewHandler(mockService))

	t.Run("Found", func(t *testing.T) {
		mockService.EXPECT().
			GetByGigAndUsher(gomock.Any(), "gig-1", testUsherID).
			Return(shift.ShiftResponse{GigID: "gig-1", AttendanceStatus: shift.StatusCheckedOut}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shifts/gig-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().
			GetByGigAndUsher(gomock.Any(), "gig-2", testUsherID).
			Return(shift.ShiftResponse{}, shifterrors.ErrShiftNotFound)

		req := httptest.NewRequest(http.MethodGet, "/shifts/gig-2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
