package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/pipeline"
	"github.com/lynxviz/lynxviz/pkg/store"
)

const testGraph = `{
	"nodes": [
		{"id": "parse::main.py", "name": "parse", "kind": "FUNCTION", "file": "main.py", "line": 10},
		{"id": "run::main.py", "name": "run", "kind": "FUNCTION", "file": "main.py", "line": 30},
		{"id": "Config::config.py", "name": "Config", "kind": "CLASS", "file": "config.py", "line": 5}
	],
	"edges": [
		{"from": "run::main.py", "to": "parse::main.py"},
		{"from": "run::main.py", "to": "Config::config.py"}
	]
}`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestServer() *Server {
	logger := quietLogger()
	return New(pipeline.NewRunner(nil, nil, logger), store.NewMemoryStore(), logger)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func layoutBody(name, direction string) string {
	body := fmt.Sprintf(`{"graph": %s`, testGraph)
	if name != "" {
		body += fmt.Sprintf(`, "name": %q`, name)
	}
	if direction != "" {
		body += fmt.Sprintf(`, "options": {"direction": %q}`, direction)
	}
	return body + "}"
}

func TestHealth(t *testing.T) {
	h := newTestServer().Handler()
	w := doRequest(t, h, http.MethodGet, "/healthz", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if resp.Status != "ok" || resp.Version == "" {
		t.Errorf("Health = %+v", resp)
	}
}

func TestComputeLayout(t *testing.T) {
	h := newTestServer().Handler()
	w := doRequest(t, h, http.MethodPost, "/api/layout", layoutBody("", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body)
	}
	var resp layoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if resp.NodeCount != 3 || resp.EdgeCount != 2 || resp.ContainerCount != 2 {
		t.Errorf("Counts = %d/%d/%d, want 3/2/2", resp.NodeCount, resp.EdgeCount, resp.ContainerCount)
	}
	if len(resp.GraphHash) != 64 {
		t.Errorf("GraphHash length = %d, want 64", len(resp.GraphHash))
	}
	if resp.Layout == nil || resp.Layout.Direction != "TB" {
		t.Errorf("Layout should default to TB: %+v", resp.Layout)
	}
	if len(resp.Layout.Nodes) != 3 {
		t.Errorf("Layout nodes = %d, want 3", len(resp.Layout.Nodes))
	}
}

func TestComputeLayoutDirection(t *testing.T) {
	h := newTestServer().Handler()
	w := doRequest(t, h, http.MethodPost, "/api/layout", layoutBody("", "LR"))

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", w.Code, w.Body)
	}
	var resp layoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if resp.Layout.Direction != "LR" {
		t.Errorf("Direction = %s, want LR", resp.Layout.Direction)
	}
}

func TestComputeLayoutErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"not json", "not json", http.StatusBadRequest, "MALFORMED_INPUT"},
		{"missing graph", `{"options": {}}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"graph not an object", `{"graph": "nope"}`, http.StatusBadRequest, "MALFORMED_INPUT"},
		{"bad direction", layoutBody("", "UP"), http.StatusBadRequest, "INVALID_DIRECTION"},
	}

	h := newTestServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, h, http.MethodPost, "/api/layout", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body)
			}
			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if string(resp.Code) != tt.wantCode {
				t.Errorf("Code = %s, want %s", resp.Code, tt.wantCode)
			}
			if resp.Error == "" {
				t.Error("Error message should not be empty")
			}
		})
	}
}

func TestLayoutLifecycle(t *testing.T) {
	h := newTestServer().Handler()

	// Create
	w := doRequest(t, h, http.MethodPost, "/api/layouts", layoutBody("demo", "TB"))
	if w.Code != http.StatusCreated {
		t.Fatalf("Create status = %d, want 201: %s", w.Code, w.Body)
	}
	var doc store.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.ID == "" || doc.Name != "demo" {
		t.Fatalf("Document = %+v", doc)
	}
	if doc.NodeCount != 3 || doc.ContainerCount != 2 {
		t.Errorf("Denormalized counts = %d/%d, want 3/2", doc.NodeCount, doc.ContainerCount)
	}

	// List
	w = doRequest(t, h, http.MethodGet, "/api/layouts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("List status = %d, want 200", w.Code)
	}
	var list listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(list.Layouts) != 1 || list.Layouts[0].ID != doc.ID {
		t.Errorf("List = %+v", list.Layouts)
	}

	// Get
	w = doRequest(t, h, http.MethodGet, "/api/layouts/"+doc.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Get status = %d, want 200", w.Code)
	}
	var loaded store.Document
	if err := json.Unmarshal(w.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if loaded.Layout == nil || len(loaded.Layout.Nodes) != 3 {
		t.Errorf("Loaded document should carry the layout: %+v", loaded.Layout)
	}

	// Delete
	w = doRequest(t, h, http.MethodDelete, "/api/layouts/"+doc.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("Delete status = %d, want 204", w.Code)
	}

	// Gone
	w = doRequest(t, h, http.MethodGet, "/api/layouts/"+doc.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Get after delete status = %d, want 404", w.Code)
	}
}

func TestGetLayoutNotFound(t *testing.T) {
	h := newTestServer().Handler()
	w := doRequest(t, h, http.MethodGet, "/api/layouts/no-such-id", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", w.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(resp.Code) != "LAYOUT_NOT_FOUND" {
		t.Errorf("Code = %s, want LAYOUT_NOT_FOUND", resp.Code)
	}
}

func TestListLayoutsEmpty(t *testing.T) {
	h := newTestServer().Handler()
	w := doRequest(t, h, http.MethodGet, "/api/layouts", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"layouts":[]`)) {
		t.Errorf("Empty list should serialize as []: %s", w.Body)
	}
}

func TestRenderSavedLayout(t *testing.T) {
	h := newTestServer().Handler()

	w := doRequest(t, h, http.MethodPost, "/api/layouts", layoutBody("demo", ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("Create status = %d: %s", w.Code, w.Body)
	}
	var doc store.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	w = doRequest(t, h, http.MethodGet, "/api/layouts/"+doc.ID+"/render?format=dot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Render status = %d, want 200: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %s, want text/vnd.graphviz", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("digraph")) {
		t.Errorf("DOT body expected, got: %s", w.Body)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	h := newTestServer().Handler()

	w := doRequest(t, h, http.MethodPost, "/api/layouts", layoutBody("demo", ""))
	if w.Code != http.StatusCreated {
		t.Fatalf("Create status = %d: %s", w.Code, w.Body)
	}
	var doc store.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	w = doRequest(t, h, http.MethodGet, "/api/layouts/"+doc.ID+"/render?format=gif", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", w.Code)
	}
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_DIRECTION", http.StatusBadRequest},
		{"MALFORMED_INPUT", http.StatusBadRequest},
		{"LAYOUT_NOT_FOUND", http.StatusNotFound},
		{"STORE_FAILURE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusForCode(errors.Code(tt.code)); got != tt.want {
			t.Errorf("statusForCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
