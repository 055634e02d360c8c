package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("success"))
	ObserveRecommendation("success")
	ObserveRecommendation("success")
	require.Equal(t, before+2, testutil.ToFloat64(RecommendationsTotal.WithLabelValues("success")))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/recommend", "400"))
	ObserveHTTPRequest("POST", "/recommend", 400)
	require.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/recommend", "400")))
}

func TestObserveWeatherFetch(t *testing.T) {
	ObserveWeatherFetch("api", 120*time.Millisecond)
	require.Equal(t, 1, testutil.CollectAndCount(WeatherFetchDuration))
}
