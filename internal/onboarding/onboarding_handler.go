package onboarding

import (
	"net/http"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves both checklists. Each method is bound to one kind at route registration.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("onboarding request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListTemplates(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.ListTemplates(c.Request.Context(), kind)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.List(c, resp)
	}
}

func (h *Handler) CreateTemplate(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
		resp, err := h.service.CreateTemplate(c.Request.Context(), kind, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, resp, nil)
	}
}

func (h *Handler) UpdateTemplate(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
		resp, err := h.service.UpdateTemplate(c.Request.Context(), kind, c.Param("id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) ListEmployeeTasks(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.ListEmployeeTasks(c.Request.Context(), middleware.ActorFrom(c), kind, c.Param("id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.List(c, resp)
	}
}

func (h *Handler) UpdateEmployeeTask(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateEmployeeTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
		resp, err := h.service.UpdateEmployeeTask(c.Request.Context(), kind, c.Param("id"), c.Param("task_id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Assign(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := h.service.AssignTemplates(c.Request.Context(), c.Param("id"), kind)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, AssignResponse{Kind: kind, Assigned: n}, nil)
	}
}
