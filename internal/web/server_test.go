package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"giflabel/internal/store"
)

func newTestServer(t *testing.T) Server {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.gif", "b.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	storePath := filepath.Join(dir, "labels.csv")
	if err := store.Save(storePath, []string{"a.gif"}, map[string]float64{"a.gif": 45}); err != nil {
		t.Fatal(err)
	}
	return Server{Dir: dir, StorePath: storePath, Ext: ".gif"}
}

func TestHandleSummary(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleSummary(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Total     int
		Labeled   int
		Remaining int
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || resp.Labeled != 1 || resp.Remaining != 1 {
		t.Errorf("summary = %+v, want 1 of 2 labeled", resp)
	}
}

func TestHandleLabels(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleLabels(rec, httptest.NewRequest(http.MethodGet, "/api/labels", nil))

	var labels map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &labels); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if labels["a.gif"] != 45 {
		t.Errorf("labels = %v", labels)
	}
}

func TestHandleReport(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleReport(rec, httptest.NewRequest(http.MethodGet, "/api/report?verbose=1", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "a.gif") || !strings.Contains(body, "b.gif") {
		t.Errorf("verbose report missing items:\n%s", body)
	}
}

func TestHandleSummary_MissingDir(t *testing.T) {
	srv := Server{Dir: filepath.Join(t.TempDir(), "nope"), StorePath: "labels.csv", Ext: ".gif"}

	rec := httptest.NewRecorder()
	srv.handleSummary(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
