package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLoad(t *testing.T) {
	before := testutil.ToFloat64(appLoads.WithLabelValues("ok"))

	RecordLoad("ok", 20*time.Millisecond)
	RecordLoad("ok", 30*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(appLoads.WithLabelValues("ok")))
}

func TestRecordLoadEmptyOutcome(t *testing.T) {
	before := testutil.ToFloat64(appLoads.WithLabelValues("unknown"))

	RecordLoad("", time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(appLoads.WithLabelValues("unknown")))
}

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/apps/{appID}/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := httpRequests.WithLabelValues("GET", "/api/apps/{appID}/items", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/apps/"+id+"/items", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpInFlight))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordLoad("ok", time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storeview_apps_loads_total")
}
