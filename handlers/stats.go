package handlers

import (
	"net/http"
	"time"

	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

// StatsHandler serves the admin dashboard counts and the public health check.
type StatsHandler struct {
	statsService services.StatsService
	visitors     services.VisitorCounter
	now          func() time.Time
}

func NewStatsHandler(statsService services.StatsService, visitors services.VisitorCounter) *StatsHandler {
	return &StatsHandler{statsService: statsService, visitors: visitors, now: time.Now}
}

// Stats godoc
// GET /api/admin/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Get(r.Context())
	if err != nil {
		pkg.Error(w, err, "Failed to load stats")
		return
	}
	pkg.JSON(w, http.StatusOK, pkg.Fields{"stats": stats})
}

// HealthResponse has no envelope; monitors read status directly.
type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	ActiveVisitors int64  `json:"activeVisitors"`
}

// Health godoc
// GET /api/health
func (h *StatsHandler) Health(w http.ResponseWriter, r *http.Request) {
	pkg.WriteRaw(w, http.StatusOK, HealthResponse{
		Status:         "OK",
		Timestamp:      h.now().Format(time.RFC3339Nano),
		ActiveVisitors: h.visitors.ActiveVisitors(),
	})
}
