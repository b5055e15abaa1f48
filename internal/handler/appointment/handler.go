package appointment

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/scheduler-api/internal/handler"
	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/scheduler"
	"github.com/salonkit/scheduler-api/pkg/httputil"
)

type Handler struct {
	scheduler *scheduler.Scheduler
}

func NewHandler(s *scheduler.Scheduler) *Handler {
	return &Handler{scheduler: s}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.Book)
		appointments.GET("/:id", h.Get)
		appointments.PUT("/:id/reschedule", h.Reschedule)
		appointments.PATCH("/:id/status", h.ChangeStatus)
		appointments.POST("/:id/check-in", h.CheckIn)
		appointments.POST("/:id/checkout", h.Checkout)
		appointments.POST("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) Book(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	booked, err := h.scheduler.Book(c.Request.Context(), &req)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, booked)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if cached, found := h.scheduler.Store().Get(id); found {
		httputil.RespondWithSuccess(c, http.StatusOK, cached)
		return
	}

	httputil.RespondWithError(c, http.StatusNotFound, "appointment not in the loaded window")
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req model.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	moved, err := h.scheduler.Reschedule(c.Request.Context(), id, req.StartTime)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, moved)
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req model.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.scheduler.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, updated)
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.transition(c, h.scheduler.CheckIn)
}

func (h *Handler) Checkout(c *gin.Context) {
	h.transition(c, h.scheduler.Complete)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.scheduler.Cancel)
}

func (h *Handler) transition(c *gin.Context, op func(context.Context, int64) (*model.Appointment, error)) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	updated, err := op(c.Request.Context(), id)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, updated)
}

func appointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.RespondWithError(c, http.StatusBadRequest, "invalid appointment ID")
		return 0, false
	}
	return id, true
}
