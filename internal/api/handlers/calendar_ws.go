package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/report"
	"github.com/smilintux/skyforge/pkg/logger"
)

// CalendarStreamHandler streams calendar days over a websocket as they
// are computed, so long ranges show progress instead of a single large
// response at the end.
type CalendarStreamHandler struct {
	store    contracts.ProfileStore
	service  *report.Service
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewCalendarStreamHandler creates a new calendar stream handler
func NewCalendarStreamHandler(store contracts.ProfileStore, service *report.Service, log *logger.Logger) *CalendarStreamHandler {
	return &CalendarStreamHandler{
		store:   store,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: log,
	}
}

// streamMessage is one websocket frame of the calendar stream
type streamMessage struct {
	Type   string                 `json:"type"` // "day", "day_error", "done", "error"
	Report *contracts.DailyReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
	Date   string                 `json:"date,omitempty"`
	Total  int                    `json:"total,omitempty"`
}

// Stream computes the requested range day by day and writes one frame
// per day, followed by a final "done" frame
// GET /api/profiles/{name}/calendar/stream?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *CalendarStreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profile, err := h.store.Load(r.Context(), vars["name"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Profile not found")
		return
	}

	query := r.URL.Query()
	start, err := contracts.ParseDate(query.Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start date (expected YYYY-MM-DD)")
		return
	}
	end, err := contracts.ParseDate(query.Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end date (expected YYYY-MM-DD)")
		return
	}
	if err := contracts.ValidateRange(start, end); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()
	total := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			break
		}

		msg := streamMessage{Type: "day", Date: d.Format(contracts.DateLayout)}
		rep, err := h.service.ComputeDay(ctx, profile, d)
		if err != nil {
			msg.Type = "day_error"
			msg.Error = err.Error()
		} else {
			msg.Report = rep
		}

		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.WithError(err).Debug("Calendar stream client gone")
			return
		}
		total++
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteJSON(streamMessage{Type: "done", Total: total}); err != nil {
		return
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
