package http

import (
	"context"
	"errors"
	"sync"
	"time"

	"visibility-srv/internal/report"
	pkgErrors "visibility-srv/pkg/errors"
	"visibility-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait    = 10 * time.Second
	wsMaxReadBytes = 4096
)

// @Summary Watch report
// @Description Websocket. Sends a snapshot, then status frames from polling and decorative progress frames until the report is terminal. Client messages: {"action":"cancel"} and {"action":"watch","report_id":"..."}
// @Tags Report
// @Param report_id path string true "Report ID"
// @Success 101
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id}/watch [get]
func (h *handler) Watch(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Watch: processGetReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// Access is checked before the upgrade so failures keep their HTTP status.
	o, err := h.uc.GetReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Watch: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Watch: upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxReadBytes)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := &watchSession{h: h, conn: conn, watcher: h.uc.NewWatcher(sc)}
	defer s.watcher.Cancel()

	if err := s.send(h.newResultFrame(frameSnapshot, o)); err != nil {
		return
	}
	if o.Status.IsTerminal() {
		_ = s.send(h.newResultFrame(frameResult, o))
	} else {
		s.begin(ctx, o.ID, o.CreatedAt)
	}

	go s.runProgress(ctx, cancel)

	for {
		var msg watchMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Debugf(ctx, "report.delivery.http.Watch: read ended: %v", err)
			}
			return
		}

		switch msg.Action {
		case actionCancel:
			s.cancel()
		case actionWatch:
			s.begin(ctx, msg.ReportID, time.Time{})
		default:
			_ = s.send(watchFrame{Type: frameError, Error: "unknown action"})
		}
	}
}

// watchSession serializes writes to one websocket and tracks the watched id for progress frames.
type watchSession struct {
	h       *handler
	conn    *websocket.Conn
	watcher report.Watcher

	writeMu sync.Mutex

	mu        sync.Mutex
	activeID  string
	startedAt time.Time
}

func (s *watchSession) send(f watchFrame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return s.conn.WriteJSON(f)
}

// begin replaces the current watch. startedAt anchors the progress display; zero means now.
func (s *watchSession) begin(ctx context.Context, reportID string, startedAt time.Time) {
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	s.mu.Lock()
	s.activeID = reportID
	s.startedAt = startedAt
	s.mu.Unlock()

	s.watcher.Begin(ctx, reportID,
		func(u report.PollUpdate) {
			_ = s.send(s.h.newStatusFrame(u))
		},
		func(o report.ReportOutput, err error) {
			s.clear(reportID)
			if err != nil {
				_ = s.send(watchFrame{Type: frameError, ReportID: reportID, Error: s.h.frameErrorMessage(err)})
				return
			}
			_ = s.send(s.h.newResultFrame(frameResult, o))
		},
	)
}

func (s *watchSession) cancel() {
	s.watcher.Cancel()
	s.mu.Lock()
	s.activeID = ""
	s.mu.Unlock()
}

func (s *watchSession) clear(reportID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == reportID {
		s.activeID = ""
	}
}

func (s *watchSession) active() (string, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID, s.startedAt, s.activeID != ""
}

// runProgress emits decorative progress frames on its own ticker. It never reads the report.
func (s *watchSession) runProgress(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(s.h.config.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id, startedAt, ok := s.active()
			if !ok {
				continue
			}
			if err := s.send(newProgressFrame(id, time.Since(startedAt))); err != nil {
				cancel()
				return
			}
		}
	}
}

// frameErrorMessage returns the client message for err without panicking on unknown errors.
func (h *handler) frameErrorMessage(err error) (msg string) {
	msg = response.MessageInternal
	defer func() {
		if r := recover(); r != nil {
			msg = response.MessageInternal
		}
	}()

	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		msg = httpErr.Message
	}
	return msg
}
