package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth"
	autherrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth/errors"
	authMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth/mock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("Success Login - Web Client (Cookie Check)", func(t *testing.T) {
		reqBody := auth.LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		}
		body, _ := json.Marshal(reqBody)

		expectedResp := auth.AuthResponse{
			ID:    "user-1",
			Email: "test@example.com",
			Role:  "BRAND",
		}

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return("access-token", "refresh-token", expectedResp, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "test@example.com", res["data"].(map[string]interface{})["user"].(map[string]interface{})["email"])
	})

	t.Run("Success Login - Mobile Client (No Cookies)", func(t *testing.T) {
		reqBody := auth.LoginRequest{
			Email:    "usher@example.com",
			Password: "password123",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return("access-token", "refresh-token", auth.AuthResponse{Email: reqBody.Email, Role: "USHER"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "MOBILE")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "access-token", res["data"].(map[string]interface{})["access_token"])
	})

	t.Run("Failed Login - Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, assert.AnError)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@test.com", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	t.Run("Success Register", func(t *testing.T) {
		reqData := auth.RegisterRequest{
			Name:     "New Usher",
			Email:    "new@example.com",
			Password: "newpassword",
			Role:     "USHER",
		}
		body, _ := json.Marshal(reqData)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(auth.AuthResponse{Email: reqData.Email, Name: reqData.Name, Role: reqData.Role}, nil)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed Register - Unknown Role", func(t *testing.T) {
		// Role outside BRAND/USHER should fail binding before the service runs.
		body := []byte(`{"name":"X","email":"x@example.com","password":"password123","role":"ADMIN"}`)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed Register - Email Already Exists", func(t *testing.T) {
		reqData := auth.RegisterRequest{
			Name:     "Existing User",
			Email:    "exists@example.com",
			Password: "password123",
			Role:     "BRAND",
		}
		body, _ := json.Marshal(reqData)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "CONFLICT", resp["error"].(map[string]interface{})["code"])
	})
}
