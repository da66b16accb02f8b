package contact

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type memStore struct {
	messages  []Message
	appendErr error
	listErr   error
}

func (s *memStore) Append(m Message) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.messages = append(s.messages, m)
	return nil
}

func (s *memStore) List() ([]Message, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]Message{}, s.messages...), nil
}

func newTestHandler(store Store, staticDir string) http.Handler {
	h := NewHandler(store, staticDir)
	h.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 678901234, time.UTC) }
	h.newID = func() string { return "fixed-id" }
	return h.Routes()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestSendEmail(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		appendErr   error
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "json ok",
			contentType: "application/json",
			body:        `{"name":"Ada","email":"ada@example.com","message":"hi"}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: msgSent,
		},
		{
			name:        "form ok",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}.Encode(),
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: msgSent,
		},
		{
			name:        "missing field",
			contentType: "application/json",
			body:        `{"name":"Ada","email":"ada@example.com"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgMissingFields,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgMissingFields,
		},
		{
			name:        "whitespace only field",
			contentType: "application/json",
			body:        `{"name":"Ada","email":"ada@example.com","message":"  \n\t"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: msgMissingFields,
		},
		{
			name:        "store failure",
			contentType: "application/json",
			body:        `{"name":"Ada","email":"ada@example.com","message":"hi"}`,
			appendErr:   errors.New("disk full"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgSendFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{appendErr: tt.appendErr}
			req := httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			req.RemoteAddr = "192.0.2.7:5555"
			rec := httptest.NewRecorder()

			newTestHandler(store, "").ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["success"] != tt.wantSuccess {
				t.Errorf("Expected success=%v, got %v", tt.wantSuccess, body["success"])
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, body["message"])
			}

			if tt.wantSuccess {
				if len(store.messages) != 1 {
					t.Fatalf("Expected 1 stored message, got %d", len(store.messages))
				}
				m := store.messages[0]
				if m.ID != "fixed-id" || m.IP != "192.0.2.7" || m.Name != "Ada" {
					t.Errorf("Expected populated record, got %+v", m)
				}
				if m.Timestamp.Nanosecond() != 678000000 {
					t.Errorf("Expected millisecond timestamp, got %v", m.Timestamp)
				}
			} else if tt.appendErr == nil && len(store.messages) != 0 {
				t.Errorf("Expected nothing stored, got %d", len(store.messages))
			}
		})
	}
}

func TestSendEmailMethodAndCORS(t *testing.T) {
	h := newTestHandler(&memStore{}, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/send-email", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard CORS origin, got %q", got)
	}
}

func TestListMessages(t *testing.T) {
	store := &memStore{messages: []Message{sampleMessage("1", "Ada"), sampleMessage("2", "Grace")}}
	h := newTestHandler(store, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/messages", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var all []Message
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil || len(all) != 2 {
		t.Fatalf("Expected 2 messages, got %d (%v)", len(all), err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/messages?filter="+url.QueryEscape(`name == "Grace"`), nil))
	var filtered []Message
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil || len(filtered) != 1 || filtered[0].ID != "2" {
		t.Errorf("Expected only Grace, got %+v (%v)", filtered, err)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/messages?filter="+url.QueryEscape(`name +`), nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad filter, got %d", rec.Code)
	}
}

func TestListMessagesEmptyAndFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(&memStore{}, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/messages", nil))
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	newTestHandler(&memStore{listErr: errors.New("corrupt")}, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/messages", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != msgLoadFailed {
		t.Errorf("Expected load failure message, got %v", body["error"])
	}
}

func TestTestEndpointAndStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>portfolio</h1>"), 0644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandler(&memStore{}, dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	if body := decodeBody(t, rec); body["message"] != msgRunning {
		t.Errorf("Expected running message, got %v", body["message"])
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	got, _ := io.ReadAll(rec.Result().Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(got), "portfolio") {
		t.Errorf("Expected index.html served, got %d %q", rec.Code, string(got))
	}
}

func TestServerLifecycle(t *testing.T) {
	srv := NewServer("127.0.0.1:0", t.TempDir(), "")
	if srv.Name() != "contact" {
		t.Errorf("Expected name contact, got %s", srv.Name())
	}
	if err := srv.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}
	resp, err := http.PostForm("http://"+srv.Addr()+"/send-email", form)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	if err := srv.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := srv.Stop(); err != nil {
		t.Errorf("Expected idempotent Stop, got %v", err)
	}
}
