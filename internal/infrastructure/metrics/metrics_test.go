package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.LimitRejected("tek_egitim", "trainings")
	r.LimitRejected("tek_egitim", "trainings")
	r.LimitRejected("bootcamp", "storage")
	r.CertificatesIssued("bootcamp", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.limitRejections.WithLabelValues("tek_egitim", "trainings")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.limitRejections.WithLabelValues("bootcamp", "storage")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.certificatesIssued.WithLabelValues("bootcamp")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveRequest(http.MethodPost, "/api/v1/certificates", http.StatusForbidden, 20*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.requestTotal.WithLabelValues("GET", "unmatched", "404")))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `certifix_http_requests_total{method="POST",route="/api/v1/certificates",status="403"} 1`)
}
