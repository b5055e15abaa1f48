package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/scheduler-api/internal/repository"
	"github.com/salonkit/scheduler-api/internal/scheduler"
	"github.com/salonkit/scheduler-api/pkg/httputil"
)

// RespondWithSchedulingError maps the scheduling error taxonomy onto HTTP
// statuses. Conflicts carry the colliding appointment's time in the message
// so the caller can offer another slot; data access failures are retryable
// by the client, never retried here.
func RespondWithSchedulingError(c *gin.Context, err error) {
	var conflict *scheduler.ConflictError
	var invalid *scheduler.InvalidTransitionError
	var dataErr *scheduler.DataAccessError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		httputil.RespondWithError(c, http.StatusNotFound, "appointment or referenced record not found")
	case errors.As(err, &conflict):
		httputil.RespondWithError(c, http.StatusConflict, conflict.Error())
	case errors.As(err, &invalid):
		httputil.RespondWithError(c, http.StatusUnprocessableEntity, invalid.Error())
	case errors.As(err, &dataErr):
		httputil.RespondWithError(c, http.StatusBadGateway, "temporary storage failure, please try again")
	default:
		httputil.RespondWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
