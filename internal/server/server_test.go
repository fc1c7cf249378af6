package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ben-mad-jlp/wireform/pkg/cache"
	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/errors"
	"github.com/ben-mad-jlp/wireform/pkg/observability"
	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// recordingCache captures TTLs passed to Set.
type recordingCache struct {
	mu   sync.Mutex
	ttls []time.Duration
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttls = append(c.ttls, ttl)
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, key string) error { return nil }
func (c *recordingCache) Close() error                                 { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	return newTestServerWithDefaults(t, Defaults{}, nil)
}

func newTestServerWithDefaults(t *testing.T, defaults Defaults, store cache.Cache) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(store, nil, logger)
	t.Cleanup(func() { _ = runner.Close() })
	ts := httptest.NewServer(New(runner, defaults, logger).Router())
	t.Cleanup(ts.Close)
	return ts
}

func testDocument() *diagram.Document {
	return &diagram.Document{
		Name:        "checkout",
		Viewport:    wireframe.ViewportNarrow,
		Arrangement: wireframe.SideBySide,
		Screens: []*wireframe.Component{
			{
				ID:   "screen",
				Kind: wireframe.KindScreen,
				Children: []*wireframe.Component{
					{ID: "title", Kind: wireframe.KindText, Flex: wireframe.Fixed(48)},
					{ID: "pay", Kind: wireframe.KindButton},
				},
			},
		},
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	ts := newTestServer(t)

	body, err := json.Marshal(map[string]any{"document": testDocument()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+"/v1/layout", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got layoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Canvas.Width != 423 || got.Canvas.Height != 728 {
		t.Errorf("canvas = %+v, want 423x728", got.Canvas)
	}
	// Screen plus two leaves.
	if len(got.Placements) != 3 {
		t.Errorf("placements = %d, want 3", len(got.Placements))
	}
	if got.DocHash == "" {
		t.Error("doc_hash is empty")
	}
}

func TestLayoutEndpointErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing document",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "bad viewport",
			body:       `{"viewport":"ultrawide","document":{"screens":[{"id":"s","kind":"screen"}]}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_VIEWPORT",
		},
		{
			name:       "empty document",
			body:       `{"document":{"screens":[]}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DOCUMENT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/layout", "application/json", bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatalf("post: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got errorBody
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if string(got.Error.Code) != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestCanvasEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/canvas?viewport=narrow&screens=3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var dims wireframe.Dims
	if err := json.NewDecoder(resp.Body).Decode(&dims); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Three boxes side by side with two gaps between.
	if want := 423*3 + 48*2; dims.Width != float64(want) {
		t.Errorf("width = %v, want %d", dims.Width, want)
	}
	if dims.Height != 728 {
		t.Errorf("height = %v, want 728", dims.Height)
	}
}

func TestCanvasEndpointDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/canvas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var dims wireframe.Dims
	if err := json.NewDecoder(resp.Body).Decode(&dims); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dims.Width != 423 || dims.Height != 728 {
		t.Errorf("dims = %+v, want single narrow box", dims)
	}
}

func TestConfiguredDefaultsApply(t *testing.T) {
	ts := newTestServerWithDefaults(t, Defaults{Viewport: "wide", Arrangement: "stacked"}, nil)

	// A document that pins down neither viewport nor arrangement picks
	// up the operator defaults.
	doc := &diagram.Document{
		Screens: []*wireframe.Component{
			{ID: "s", Kind: wireframe.KindScreen, Children: []*wireframe.Component{
				{ID: "t", Kind: wireframe.KindText},
			}},
		},
	}
	body, err := json.Marshal(map[string]any{"document": doc})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+"/v1/layout", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var got layoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// A single wide screen box is 1328 wide.
	if got.Canvas.Width != 1328 {
		t.Errorf("canvas width = %v, want 1328 (wide default)", got.Canvas.Width)
	}

	// The canvas endpoint uses the same defaults.
	canvasResp, err := http.Get(ts.URL + "/v1/canvas?screens=2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer canvasResp.Body.Close()
	var dims wireframe.Dims
	if err := json.NewDecoder(canvasResp.Body).Decode(&dims); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Stacked: two wide boxes tall, one wide.
	if dims.Width != 1328 {
		t.Errorf("canvas width = %v, want 1328", dims.Width)
	}
	if want := 728.0*2 + 48; dims.Height != want {
		t.Errorf("canvas height = %v, want %v", dims.Height, want)
	}
}

func TestDocumentViewportBeatsConfiguredDefault(t *testing.T) {
	ts := newTestServerWithDefaults(t, Defaults{Viewport: "wide"}, nil)

	body, err := json.Marshal(map[string]any{"document": testDocument()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+"/v1/layout", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var got layoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The document says narrow; the operator default must not override it.
	if got.Canvas.Width != 423 {
		t.Errorf("canvas width = %v, want 423 (document viewport)", got.Canvas.Width)
	}
}

func TestConfiguredTTLReachesCache(t *testing.T) {
	store := &recordingCache{}
	ts := newTestServerWithDefaults(t, Defaults{TTL: 5 * time.Minute}, store)

	body, err := json.Marshal(map[string]any{"document": testDocument()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+"/v1/layout", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.ttls) != 1 {
		t.Fatalf("cache Set called %d times, want 1", len(store.ttls))
	}
	if store.ttls[0] != 5*time.Minute {
		t.Errorf("cached with ttl %v, want 5m", store.ttls[0])
	}
}

// errorRecordingHooks captures OnError calls.
type errorRecordingHooks struct {
	observability.NoopHTTPHooks
	mu   sync.Mutex
	errs []error
}

func (h *errorRecordingHooks) OnError(ctx context.Context, method, path string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func TestWriteErrorFiresErrorHook(t *testing.T) {
	hooks := &errorRecordingHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, nil, logger)
	t.Cleanup(func() { _ = runner.Close() })
	s := New(runner, Defaults{}, logger)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/layout", nil)
	s.writeError(rec, req, fmt.Errorf("disk on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.errs) != 1 {
		t.Fatalf("OnError fired %d times, want 1", len(hooks.errs))
	}

	// Coded client errors are not internal failures and must not fire it.
	rec = httptest.NewRecorder()
	s.writeError(rec, req, errors.New(errors.ErrCodeInvalidInput, "bad input"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(hooks.errs) != 1 {
		t.Errorf("OnError fired for a 400 response")
	}
}

func TestCanvasEndpointErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"non-integer screens", "?screens=two"},
		{"zero screens", "?screens=0"},
		{"bad viewport", "?viewport=huge"},
		{"bad arrangement", "?arrangement=diagonal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/v1/canvas" + tt.query)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
