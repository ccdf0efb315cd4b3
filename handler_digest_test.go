package etadigest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/eta-digest/catalog"
	"github.com/theoremus-urban-solutions/eta-digest/digest"
	"github.com/theoremus-urban-solutions/eta-digest/store"
)

func newTestServer(t *testing.T, relay MessageRelay) *Server {
	t.Helper()
	dir := t.TempDir()
	body := "station_id,station_order,station_name,segment\n" +
		"1,1,Alpha,Out\n" +
		"2,2,Bravo,Out\n"
	if err := os.WriteFile(filepath.Join(dir, "30.csv"), []byte(body), 0644); err != nil {
		t.Fatalf("write route file: %v", err)
	}
	c, err := catalog.Load(dir)
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	predictions := store.NewPredictionStore()
	predictions.Update("30", 1, []store.Prediction{{ETA: 3, Board: "A"}})
	vehicles := store.NewVehicleTracker()
	renderer := digest.NewRenderer(c, predictions)
	return NewServer(0, c, renderer, predictions, vehicles, relay)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if resp.Status != "ok" || resp.Routes != 1 || resp.Predictions != 1 {
		t.Errorf("unexpected health %+v", resp)
	}
}

func TestHandleRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))

	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("decode routes: %v", err)
	}
	if len(names) != 1 || names[0] != "30" {
		t.Errorf("expected [30], got %v", names)
	}
}

func TestHandleDigest(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("known route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/digest/30", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.HasPrefix(body, "*Out*\n") || !strings.Contains(body, "Alpha: 3\n") {
			t.Errorf("unexpected digest body:\n%s", body)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/digest/99", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func postForm(s *Server, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleMessage(t *testing.T) {
	var gotChat int64
	var gotText string
	relay := func(chatID int64, text string) error {
		gotChat = chatID
		gotText = text
		return nil
	}
	s := newTestServer(t, relay)

	t.Run("relays", func(t *testing.T) {
		rec := postForm(s, url.Values{"chat_id": {"42"}, "message": {"hello"}})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotChat != 42 || gotText != "hello" {
			t.Errorf("relay got (%d, %q)", gotChat, gotText)
		}
		if rec.Body.String() != "Message sent" {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("missing chat_id", func(t *testing.T) {
		rec := postForm(s, url.Values{"message": {"hello"}})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		rec := postForm(s, url.Values{"chat_id": {"42"}})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("GET not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/message", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("relay failure", func(t *testing.T) {
		failing := newTestServer(t, func(int64, string) error { return errors.New("chat unreachable") })
		rec := postForm(failing, url.Values{"chat_id": {"42"}, "message": {"hello"}})
		if rec.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", rec.Code)
		}
	})

	t.Run("no relay configured", func(t *testing.T) {
		bare := newTestServer(t, nil)
		rec := postForm(bare, url.Values{"chat_id": {"42"}, "message": {"hello"}})
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", rec.Code)
		}
	})
}
