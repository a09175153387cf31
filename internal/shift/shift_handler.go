package shift

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

func (h *Handler) Scan(c *gin.Context) {
	usherID := c.GetString("user_id")

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Scan(c.Request.Context(), req.Token, usherID, req.Action, time.Now().UTC())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if req.Action == ActionCheckIn {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	usherID := c.GetString("user_id")

	resp, err := h.service.GetAllByUsher(c.Request.Context(), usherID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOne(c *gin.Context) {
	usherID := c.GetString("user_id")
	gigID := c.Param("gigId")

	resp, err := h.service.GetByGigAndUsher(c.Request.Context(), gigID, usherID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
