package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visibility-srv/config"
	"visibility-srv/internal/middleware"
	"visibility-srv/internal/model"
	"visibility-srv/internal/report"
	reportPostgre "visibility-srv/internal/report/repository/postgre"
	reportUsecase "visibility-srv/internal/report/usecase"
	"visibility-srv/pkg/generator"
	"visibility-srv/pkg/log"
	"visibility-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type fakeUseCase struct {
	submitErr   error
	submitScope model.Scope
	getOut      report.ReportOutput
	getErr      error
	shareOut    report.ReportOutput
	shareErr    error
	exportIn    report.ExportInput
	watcher     *fakeWatcher
}

func (f *fakeUseCase) Submit(ctx context.Context, sc model.Scope, input report.SubmitInput) (report.SubmitOutput, error) {
	f.submitScope = sc
	if f.submitErr != nil {
		return report.SubmitOutput{}, f.submitErr
	}
	return report.SubmitOutput{ReportID: "r1", Status: model.StatusPending, WebsiteURL: input.WebsiteURL}, nil
}

func (f *fakeUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (report.ReportOutput, error) {
	return f.getOut, f.getErr
}

func (f *fakeUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ListReportsOutput, error) {
	return report.ListReportsOutput{}, nil
}

func (f *fakeUseCase) Wait(ctx context.Context, sc model.Scope, input report.WaitInput) (report.ReportOutput, error) {
	return f.getOut, f.getErr
}

func (f *fakeUseCase) NewWatcher(sc model.Scope) report.Watcher {
	return f.watcher
}

func (f *fakeUseCase) ResolveShare(ctx context.Context, input report.ResolveShareInput) (report.ReportOutput, error) {
	return f.shareOut, f.shareErr
}

func (f *fakeUseCase) Export(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	f.exportIn = input
	return report.ExportOutput{DownloadURL: "https://files.test/x", Format: input.Format}, nil
}

// fakeWatcher completes synchronously: one status update, then the final output.
type fakeWatcher struct {
	final report.ReportOutput
}

func (w *fakeWatcher) Begin(ctx context.Context, reportID string, onUpdate func(report.PollUpdate), onDone func(report.ReportOutput, error)) {
	onUpdate(report.PollUpdate{ReportID: reportID, Status: model.StatusProcessing, Attempt: 1})
	onDone(w.final, nil)
}

func (w *fakeWatcher) Cancel()          {}
func (w *fakeWatcher) ActiveID() string { return "" }

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (scope.Payload, error) {
	if token == "good" {
		return scope.Payload{UserID: "u1"}, nil
	}
	return scope.Payload{}, errors.New("bad token")
}

func newTestServer(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNopLogger(), uc, nil, Config{ProgressInterval: time.Hour})
	mw := middleware.New(log.NewNopLogger(), fakeVerifier{}, config.CookieConfig{})
	h.RegisterRoutes(r.Group("/api/v1"), mw)
	h.RegisterShareRoutes(r.Group("/share"))
	return r
}

func doRequest(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantField   string
	}{
		{
			name:      "field errors",
			err:       report.FieldErrors{{Field: "competitor_websites[1]", Message: "Enter a valid URL"}},
			wantCode:  400,
			wantField: "competitor_websites[1]",
		},
		{
			name:        "backend message",
			err:         &report.SubmitError{Message: "Rate limit reached"},
			wantCode:    502,
			wantMessage: "Rate limit reached",
		},
		{
			name:        "plain submit failure",
			err:         report.ErrSubmitFailed,
			wantCode:    502,
			wantMessage: report.DefaultSubmitMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestServer(&fakeUseCase{submitErr: tt.err})
			w, resp := doRequest(r, http.MethodPost, "/api/v1/reports", `{"website_url":"acme.test"}`)

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantMessage != "" && resp["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", resp["message"], tt.wantMessage)
			}
			if tt.wantField != "" {
				fields, _ := resp["errors"].(map[string]any)
				if _, ok := fields[tt.wantField]; !ok {
					t.Errorf("errors = %v, want field %q", resp["errors"], tt.wantField)
				}
			}
		})
	}
}

func TestSubmitFreeIsAnonymous(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestServer(uc)

	w, _ := doRequest(r, http.MethodPost, "/api/v1/free-reports", `{"website_url":"acme.test"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	if !uc.submitScope.IsAnonymous() {
		t.Errorf("scope = %+v, want anonymous", uc.submitScope)
	}

	w, _ = doRequest(r, http.MethodPost, "/api/v1/reports", `{"website_url":"acme.test"}`)
	if w.Code != http.StatusOK || uc.submitScope.UserID != "u1" {
		t.Errorf("authenticated submit: code %d scope %+v", w.Code, uc.submitScope)
	}
}

func TestSubmitRequiresAuth(t *testing.T) {
	r := newTestServer(&fakeUseCase{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}

func TestResolveShare(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "found", wantCode: 200},
		{name: "not found", err: report.ErrReportNotFound, wantCode: 404},
		{name: "not ready", err: report.ErrReportNotCompleted, wantCode: 409},
		{name: "expired", err: report.ErrShareExpired, wantCode: 403},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				shareOut: report.ReportOutput{ID: "r1", Status: model.StatusCompleted},
				shareErr: tt.err,
			}
			w, _ := doRequest(newTestServer(uc), http.MethodGet, "/share/tok", "")
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestGetReportErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{err: report.ErrReportNotFound, wantCode: 404},
		{err: report.ErrAccessDenied, wantCode: 403},
		{err: context.DeadlineExceeded, wantCode: 499},
	}
	for _, tt := range tests {
		w, _ := doRequest(newTestServer(&fakeUseCase{getErr: tt.err}), http.MethodGet, "/api/v1/reports/r1", "")
		if w.Code != tt.wantCode {
			t.Errorf("%v: code = %d, want %d", tt.err, w.Code, tt.wantCode)
		}
	}
}

func TestExportFormatFromQuery(t *testing.T) {
	uc := &fakeUseCase{}
	w, _ := doRequest(newTestServer(uc), http.MethodPost, "/api/v1/reports/r1/export?format=json", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	if uc.exportIn.ReportID != "r1" || uc.exportIn.Format != "json" {
		t.Errorf("input = %+v", uc.exportIn)
	}
}

func TestFrameErrorMessage(t *testing.T) {
	h := &handler{l: log.NewNopLogger()}
	if got := h.frameErrorMessage(report.ErrReportNotFound); got != "Report not found" {
		t.Errorf("not found message = %q", got)
	}
	if got := h.frameErrorMessage(errors.New("boom")); got == "" {
		t.Error("unknown error should still yield a message")
	}
}

func dialWatch(t *testing.T, uc report.UseCase) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestServer(uc))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/reports/r1/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Authorization": {"Bearer good"}})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrames(t *testing.T, conn *websocket.Conn, n int) []watchFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	frames := make([]watchFrame, 0, n)
	for i := 0; i < n; i++ {
		var f watchFrame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		frames = append(frames, f)
	}
	return frames
}

func TestWatchPendingReport(t *testing.T) {
	uc := &fakeUseCase{
		getOut:  report.ReportOutput{ID: "r1", Status: model.StatusPending},
		watcher: &fakeWatcher{final: report.ReportOutput{ID: "r1", Status: model.StatusCompleted, PollState: report.PollStateDone}},
	}
	conn := dialWatch(t, uc)

	frames := readFrames(t, conn, 3)
	wantTypes := []string{frameSnapshot, frameStatus, frameResult}
	for i, want := range wantTypes {
		if frames[i].Type != want {
			t.Errorf("frame %d type = %q, want %q", i, frames[i].Type, want)
		}
	}
	if frames[2].Result == nil || frames[2].Result.PollState != report.PollStateDone {
		t.Errorf("result = %+v, want poll_state done", frames[2].Result)
	}
}

func TestWatchTerminalReport(t *testing.T) {
	uc := &fakeUseCase{
		getOut:  report.ReportOutput{ID: "r1", Status: model.StatusError, ErrorMessage: "quota"},
		watcher: &fakeWatcher{},
	}
	conn := dialWatch(t, uc)

	frames := readFrames(t, conn, 2)
	if frames[0].Type != frameSnapshot || frames[1].Type != frameResult {
		t.Fatalf("types = %q, %q", frames[0].Type, frames[1].Type)
	}
	if frames[1].Status != string(model.StatusError) {
		t.Errorf("status = %q, want error", frames[1].Status)
	}
}

func TestMalformedReportIDIsNotFound(t *testing.T) {
	// Real usecase and repository without a database: the id never reaches a query.
	l := log.NewNopLogger()
	repo := reportPostgre.New(nil, l)
	uc := reportUsecase.New(repo, nil, generator.New(generator.Config{}), nil, nil, l, reportUsecase.Config{})
	r := newTestServer(uc)

	paths := []string{
		"/api/v1/free-reports/abc",
		"/api/v1/free-reports/abc/wait",
		"/api/v1/reports/abc",
		"/api/v1/reports/abc/wait",
	}
	for _, path := range paths {
		w, resp := doRequest(r, http.MethodGet, path, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s code = %d, want 404", path, w.Code)
		}
		if resp["message"] != "Report not found" {
			t.Errorf("GET %s message = %v", path, resp["message"])
		}
	}

	w, _ := doRequest(r, http.MethodPost, "/api/v1/reports/abc/export", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("export code = %d, want 404", w.Code)
	}
}
