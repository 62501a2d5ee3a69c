package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpdelivery "github.com/Xausdorf/girocode/internal/delivery/http"
	"github.com/Xausdorf/girocode/internal/infrastructure/charset"
	"github.com/Xausdorf/girocode/internal/infrastructure/metrics"
	"github.com/Xausdorf/girocode/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/girocode/internal/infrastructure/render"
	"github.com/Xausdorf/girocode/internal/usecase/generategirocode"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	uc := generategirocode.NewUseCase(
		charset.NewEncoder(),
		qrgenerator.NewGenerator(),
		render.NewPNGRenderer(render.Caption{}, 0),
		m,
		logger,
	)
	srv := httptest.NewServer(httpdelivery.NewRouter(httpdelivery.NewHandler(uc, logger), m.Handler()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/girocode", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func sampleBody() httpdelivery.GenerateRequest {
	return httpdelivery.GenerateRequest{
		Beneficiary: "Kenan",
		IBAN:        "DE74500105176879856947",
		Remittance:  "Test subject",
		Amount:      "1.44",
		BIC:         "INGDDEFFXXX",
	}
}

func TestHandleGenerate_PNG(t *testing.T) {
	resp := postJSON(t, newServer(t), sampleBody())

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	_, err := uuid.Parse(resp.Header.Get("X-Girocode-Id"))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
}

func TestHandleGenerate_Errors(t *testing.T) {
	srv := newServer(t)

	blank := sampleBody()
	blank.IBAN = " "
	tooLarge := sampleBody()
	tooLarge.Remittance = strings.Repeat("ä", 180)
	badCharset := sampleBody()
	badCharset.Charset = "KOI8-R"
	unsupported := sampleBody()
	unsupported.Charset = "ISO-8859-1"
	unsupported.Beneficiary = "Жанна"

	tests := []struct {
		name string
		body any
		want int
	}{
		{"blank iban", blank, http.StatusBadRequest},
		{"bad charset", badCharset, http.StatusBadRequest},
		{"too large", tooLarge, http.StatusUnprocessableEntity},
		{"unsupported character", unsupported, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestHandleGenerate_InvalidJSON(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Post(srv.URL+"/api/girocode", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleGenerateQuery(t *testing.T) {
	srv := newServer(t)
	q := url.Values{
		"beneficiary": {"Kenan"},
		"iban":        {"DE74500105176879856947"},
		"amount":      {"1.44"},
		"charset":     {"8"},
		"remittance":  {"Miete 10 €"},
	}

	resp, err := http.Get(srv.URL + "/api/girocode?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)
	postJSON(t, srv, sampleBody())

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `girocode_generated_total{charset="UTF-8"} 1`)
}

func TestHandleGenerate_ParseFailureCounted(t *testing.T) {
	srv := newServer(t)

	body := sampleBody()
	body.Amount = "1e"
	resp := postJSON(t, srv, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["error"], "girocode generation failed")

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `girocode_failed_total{reason="invalid_argument"} 1`)
}

func TestHandleGenerateQuery_Rejections(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"huge amount", "iban=DE74500105176879856947&amount=1e20000000", http.StatusBadRequest},
		{"invalid utf-8", "iban=DE74500105176879856947&amount=1&remittance=a%FFb", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/girocode?" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
