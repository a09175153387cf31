package gig

import (
	"net/http"

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

func (h *Handler) Create(c *gin.Context) {
	brandID := c.GetString("user_id")

	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), brandID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Publish(c *gin.Context) {
	brandID := c.GetString("user_id")
	gigID := c.Param("id")

	resp, err := h.service.Publish(c.Request.Context(), gigID, brandID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	brandID := c.GetString("user_id")

	resp, err := h.service.GetAllByBrand(c.Request.Context(), brandID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	usherID := c.GetString("user_id")
	gigID := c.Param("id")

	resp, err := h.service.Apply(c.Request.Context(), gigID, usherID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

type decideApplicationRequest struct {
	Approve bool `json:"approve"`
}

func (h *Handler) Decide(c *gin.Context) {
	brandID := c.GetString("user_id")
	applicationID := c.Param("applicationId")

	var req decideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), applicationID, brandID, req.Approve)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Complete(c *gin.Context) {
	brandID := c.GetString("user_id")
	gigID := c.Param("id")

	if err := h.service.Complete(c.Request.Context(), gigID, brandID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"gig_id": gigID, "status": StatusCompleted}, nil)
}
