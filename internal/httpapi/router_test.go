package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/wordcase/inflect"
	"github.com/erraggy/wordcase/internal/rulewatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, mutate ...func(*Config)) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	cfg := Config{
		Metrics:       NewMetrics(reg),
		Gatherer:      reg,
		MaxInputBytes: 64,
		MaxBatch:      3,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewRouter(cfg), reg
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestRequestID(t *testing.T) {
	h, _ := newTestRouter(t)

	t.Run("generated", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/healthz", nil)
		assert.Len(t, rec.Header().Get(requestIDHeader), 36)
	})

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(requestIDHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Len(t, rec.Header().Get(requestIDHeader), 36)
	})
}

func TestStyles(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/v1/styles", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[stylesResponse](t, rec)
	names := make([]string, 0, len(resp.Styles))
	for _, s := range resp.Styles {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"camel", "pascal", "kebab", "snake", "words", "title"}, names)
	assert.Contains(t, resp.Styles[0].Aliases, "camelize")
}

func TestConvert(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		status int
		result string
		errMsg string
	}{
		{name: "kebab", target: "/v1/convert/kebab?input=apiV2.0.1Response", status: 200, result: "api-v2-0-1-response"},
		{name: "alias", target: "/v1/convert/camelize?input=foo_bar", status: 200, result: "fooBar"},
		{name: "words", target: "/v1/convert/words?input=XMLHttpRequest", status: 200, result: "XML http request"},
		{name: "empty input", target: "/v1/convert/snake?input=", status: 200, result: ""},
		{name: "unknown style", target: "/v1/convert/shout?input=x", status: 400, errMsg: "unknown style"},
		{name: "missing input", target: "/v1/convert/kebab", status: 400, errMsg: "missing 'input'"},
		{name: "oversize input", target: "/v1/convert/kebab?input=" + strings.Repeat("a", 65), status: 400, errMsg: "exceeds maximum size of 64 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.errMsg != "" {
				assert.Contains(t, decode[errorResponse](t, rec).Error, tt.errMsg)
				return
			}
			assert.Equal(t, tt.result, decode[convertResponse](t, rec).Result)
		})
	}
}

func TestConvertBatch(t *testing.T) {
	h, _ := newTestRouter(t)

	t.Run("ok", func(t *testing.T) {
		body := strings.NewReader(`{"inputs":["fooBar","HTMLParser"]}`)
		rec := do(t, h, http.MethodPost, "/v1/convert/snake", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[convertBatchResponse](t, rec)
		assert.Equal(t, "snake", resp.Style)
		assert.Equal(t, []conversion{
			{Input: "fooBar", Result: "foo_bar"},
			{Input: "HTMLParser", Result: "html_parser"},
		}, resp.Results)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/convert/snake", strings.NewReader(`not json`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[errorResponse](t, rec).Error, "inputs")
	})

	t.Run("too many inputs", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/convert/snake", strings.NewReader(`{"inputs":["a","b","c","d"]}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[errorResponse](t, rec).Error, "too many 'inputs' values: 4 (maximum 3)")
	})

	t.Run("body too large", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString(`{"inputs":["`)
		buf.WriteString(strings.Repeat("a", 300))
		buf.WriteString(`"]}`)
		rec := do(t, h, http.MethodPost, "/v1/convert/snake", &buf)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := do(t, h, http.MethodDelete, "/v1/convert/snake", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "method not allowed", decode[errorResponse](t, rec).Error)
	})
}

func TestTokenize(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/v1/tokenize?input=foo__bar_v2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[tokenizeResponse](t, rec)
	assert.Equal(t, []tokenResponse{
		{Text: "foo", Kind: "word", Sep: 0},
		{Text: "bar", Kind: "word", Sep: 2},
		{Text: "v2", Kind: "version", Sep: 1},
	}, resp.Tokens)
}

func TestInflect(t *testing.T) {
	h, _ := newTestRouter(t)

	t.Run("pluralize", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/pluralize?word=child&word=API&word=Box", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []inflection{
			{Word: "child", Result: "children"},
			{Word: "API", Result: "APIs"},
			{Word: "Box", Result: "Boxes"},
		}, decode[inflectResponse](t, rec).Results)
	})

	t.Run("singularize", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/singularize?word=People&word=cities", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []inflection{
			{Word: "People", Result: "Person"},
			{Word: "cities", Result: "city"},
		}, decode[inflectResponse](t, rec).Results)
	})

	t.Run("missing word", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/pluralize", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing 'word' query parameter", decode[errorResponse](t, rec).Error)
	})

	t.Run("too many words", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/v1/singularize?word=a&word=b&word=c&word=d", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("custom rules", func(t *testing.T) {
		in, err := inflect.New(inflect.WithAcronym("SKU", "SKUs"))
		require.NoError(t, err)
		h, _ := newTestRouter(t, func(c *Config) { c.Rules = rulewatch.NewStatic(in) })

		rec := do(t, h, http.MethodGet, "/v1/pluralize?word=SKU", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "SKUs", decode[inflectResponse](t, rec).Results[0].Result)
	})
}

func TestQuantify(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name   string
		query  string
		status int
		result string
	}{
		{name: "one", query: "count=1&unit=child&plural=children", status: 200, result: "1 child"},
		{name: "explicit plural", query: "count=2&unit=child&plural=children", status: 200, result: "2 children"},
		{name: "string count", query: "count=05.6&unit=cat", status: 200, result: "05.6 cats"},
		{name: "not a number", query: "count=many&unit=cat", status: 200, result: "many cats"},
		{name: "empty plural used as given", query: "count=2&unit=ox&plural=", status: 200, result: "2 "},
		{name: "missing count", query: "unit=cat", status: 400},
		{name: "empty unit", query: "count=2&unit=", status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/v1/quantify?"+tt.query, nil)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.result, decode[quantifyResponse](t, rec).Result)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/v2/nothing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[errorResponse](t, rec).Error)
}

func TestMetrics(t *testing.T) {
	h, reg := newTestRouter(t)

	do(t, h, http.MethodGet, "/v1/convert/kebab?input=fooBar", nil)
	do(t, h, http.MethodGet, "/v1/pluralize?word=a&word=b", nil)
	do(t, h, http.MethodGet, "/v1/convert/shout?input=x", nil)

	families, err := reg.Gather()
	require.NoError(t, err)
	got := map[string]bool{}
	for _, mf := range families {
		got[mf.GetName()] = true
	}
	assert.True(t, got["wordcase_http_requests_total"])
	assert.True(t, got["wordcase_http_request_duration_seconds"])
	assert.True(t, got["wordcase_transforms_total"])

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `wordcase_transforms_total{operation="convert:kebab"} 1`)
	assert.Contains(t, body, `wordcase_transforms_total{operation="pluralize"} 2`)
	assert.Contains(t, body, `route="/v1/convert/{style}",status="400"`)
}

func TestMetrics_ObserveReload(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveReload(nil)
	m.ObserveReload(nil)
	m.ObserveReload(assert.AnError)

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "wordcase_rule_reloads_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"success": 2, "error": 1}, counts)
}

func TestCORS(t *testing.T) {
	h, _ := newTestRouter(t, func(c *Config) { c.CORSOrigins = []string{"https://example.com"} })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/styles", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/styles", nil)
		req.Header.Set("Origin", "https://evil.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/convert/kebab", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h, _ := newTestRouter(t, func(c *Config) { c.Logger = logger })

	do(t, h, http.MethodGet, "/v1/tokenize?input=x", nil)

	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "path=/v1/tokenize")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=")
}

func TestServeListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h, _ := newTestRouter(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serveListener(ctx, ln, h, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
