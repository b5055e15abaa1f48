package calendar

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/scheduler-api/internal/grid"
	"github.com/salonkit/scheduler-api/internal/handler"
	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/scheduler"
	"github.com/salonkit/scheduler-api/internal/service/directory"
	"github.com/salonkit/scheduler-api/pkg/httputil"
)

type Handler struct {
	store     *scheduler.Store
	directory *directory.Service
	hours     grid.BusinessHours
}

func NewHandler(store *scheduler.Store, dir *directory.Service, hours grid.BusinessHours) *Handler {
	return &Handler{store: store, directory: dir, hours: hours}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar", h.GetCalendar)
}

// Entry is an appointment plus its computed grid placement. DayColumn is the
// day offset within the window: always 0 in day view, 0-6 in week view.
type Entry struct {
	*model.Appointment
	Layout    grid.Layout `json:"layout"`
	DayColumn int         `json:"day_column"`
}

type View struct {
	View        string               `json:"view"`
	WindowStart time.Time            `json:"window_start"`
	WindowEnd   time.Time            `json:"window_end"`
	SlotMinutes int                  `json:"slot_minutes"`
	FirstSlot   int                  `json:"first_slot"`
	SlotCount   int                  `json:"slot_count"`
	Staff       []*model.StaffMember `json:"staff"`
	Entries     []Entry              `json:"entries"`
}

// GetCalendar loads the requested window and returns its appointments with
// layout. staff_ids narrows which staff's appointments are returned; it is a
// display filter only and has no effect on booking conflict checks.
func (h *Handler) GetCalendar(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.DefaultQuery("date", time.Now().Format("2006-01-02")))
	if err != nil {
		httputil.RespondWithError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	view := c.DefaultQuery("view", "day")
	var windowStart, windowEnd time.Time
	switch view {
	case "day":
		windowStart = grid.DayStart(date)
		windowEnd = windowStart.AddDate(0, 0, 1)
	case "week":
		windowStart = grid.WeekStart(date)
		windowEnd = windowStart.AddDate(0, 0, 7)
	default:
		httputil.RespondWithError(c, http.StatusBadRequest, "view must be day or week")
		return
	}

	visible, ok := parseStaffIDs(c.Query("staff_ids"))
	if !ok {
		httputil.RespondWithError(c, http.StatusBadRequest, "invalid staff_ids")
		return
	}

	appointments, err := h.store.LoadWindow(c.Request.Context(), windowStart, windowEnd)
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}

	staff, err := h.directory.ListStaff(c.Request.Context())
	if err != nil {
		handler.RespondWithSchedulingError(c, err)
		return
	}

	entries := make([]Entry, 0, len(appointments))
	for _, a := range appointments {
		if visible != nil && !visible[a.StaffID] {
			continue
		}
		entries = append(entries, Entry{
			Appointment: a,
			Layout:      grid.AppointmentLayout(a, grid.DayStart(a.StartTime)),
			DayColumn:   grid.DayColumn(a.StartTime, windowStart),
		})
	}

	httputil.RespondWithSuccess(c, http.StatusOK, View{
		View:        view,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		SlotMinutes: grid.SlotMinutes,
		FirstSlot:   h.hours.FirstSlot(),
		SlotCount:   h.hours.SlotCount(),
		Staff:       staff,
		Entries:     entries,
	})
}

func parseStaffIDs(raw string) (map[int64]bool, bool) {
	if raw == "" {
		return nil, true
	}
	ids := make(map[int64]bool)
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, false
		}
		ids[id] = true
	}
	return ids, true
}
