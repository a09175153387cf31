package qrsession

import (
	"net/http"
	"time"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/apperror"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	brandID := c.GetString("user_id")
	gigID := c.Param("id")

	resp, err := h.service.Generate(c.Request.Context(), gigID, brandID, time.Now().UTC())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetActive(c *gin.Context) {
	brandID := c.GetString("user_id")
	gigID := c.Param("id")

	resp, err := h.service.GetActive(c.Request.Context(), gigID, brandID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Revoke(c *gin.Context) {
	brandID := c.GetString("user_id")
	sessionID := c.Param("sessionId")

	if err := h.service.Revoke(c.Request.Context(), sessionID, brandID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session_id": sessionID, "is_active": false}, nil)
}
