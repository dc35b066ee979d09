package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCountersExposed(t *testing.T) {
	Register()

	IncBackendRequest("slots", "ok")
	IncPaymentOutcome("succeeded")
	IncStaleResponse()
	IncInvalidRecord("slot")
	IncExport("ok")

	srv := httptest.NewServer(promhttp.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, "gymslot_backend_requests_total"))
	assert.True(t, strings.Contains(text, "gymslot_payment_outcomes_total"))
	assert.True(t, strings.Contains(text, "gymslot_stale_responses_discarded_total"))
	assert.True(t, strings.Contains(text, "gymslot_invalid_records_total"))
	assert.True(t, strings.Contains(text, "gymslot_exports_total"))
}
