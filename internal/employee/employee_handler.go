package employee

import (
	"net/http"
	"strconv"

	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/shared/apperror"
	"go-empdir/internal/shared/contextutil"
	"go-empdir/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	h.logger.Warn("employee request binding failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	details := apperror.MapValidationError(err).Error()
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
}

func (h *Handler) parseEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	actor := contextutil.GetCurrentUser(ctx)
	h.logger.Debug("http create employee", zap.String("caller_id", actor.UserID.String()))

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(ctx, actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPaged(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	h.logger.Debug("http get paged employees",
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
	)

	resp, err := h.service.GetPaged(ctx, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.TotalCount, resp.CurrentPage, resp.PageSize)
	response.Success(c, http.StatusOK, resp.Items, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get employee by id", zap.String("employee_id", id.String()))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	actor := contextutil.GetCurrentUser(ctx)
	id, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http update employee",
		zap.String("caller_id", actor.UserID.String()),
		zap.String("employee_id", id.String()),
	)

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(ctx, actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	actor := contextutil.GetCurrentUser(ctx)
	id, ok := h.parseEmployeeID(c)
	if !ok {
		return
	}
	h.logger.Debug("http delete employee",
		zap.String("caller_id", actor.UserID.String()),
		zap.String("employee_id", id.String()),
	)

	if err := h.service.Delete(ctx, actor, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
