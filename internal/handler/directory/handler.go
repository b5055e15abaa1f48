package directory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/scheduler-api/internal/handler"
	"github.com/salonkit/scheduler-api/internal/service/directory"
	"github.com/salonkit/scheduler-api/pkg/httputil"
)

// Handler exposes the read-only staff/service/client directories the
// calendar UI needs. Management of these records lives elsewhere.
type Handler struct {
	directory *directory.Service
}

func NewHandler(d *directory.Service) *Handler {
	return &Handler{directory: d}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/staff", h.ListStaff)
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/clients", h.SearchClients)
	rg.GET("/clients/:id", h.GetClient)
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.directory.ListStaff(c.Request.Context())
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, staff)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.directory.ListServices(c.Request.Context())
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	service, err := h.directory.GetService(c.Request.Context(), id)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, service)
}

func (h *Handler) SearchClients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		httputil.RespondWithError(c, http.StatusBadRequest, "missing search query")
		return
	}
	clients, err := h.directory.SearchClients(c.Request.Context(), query)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, clients)
}

func (h *Handler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.directory.GetClient(c.Request.Context(), id)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, client)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.RespondWithError(c, http.StatusBadRequest, "invalid ID")
		return 0, false
	}
	return id, true
}
