// Package metrics holds the process-wide counters and histograms of the
// carpool service and the Prometheus exposition handler.
package metrics

import (
	"fmt"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"github.com/wb-go/wbf/ginext"
)

var (
	searchDuration   = vm.NewHistogram("carpool_search_duration_seconds")
	searchCandidates = vm.NewHistogram("carpool_search_candidates")
	searchDegraded   = vm.NewCounter("carpool_search_degraded_total")
	searchPartial    = vm.NewCounter("carpool_search_partial_total")
	oracleFailures   = vm.NewCounter("carpool_oracle_failures_total")

	reviewsSubmitted = vm.NewCounter("carpool_reviews_submitted_total")
	ratingCacheHits  = vm.NewCounter(`carpool_rating_cache_total{result="hit"}`)
	ratingCacheMiss  = vm.NewCounter(`carpool_rating_cache_total{result="miss"}`)
)

func ObserveSearch(start time.Time, candidates int) {
	searchDuration.UpdateDuration(start)
	searchCandidates.Update(float64(candidates))
}

func SearchDegraded() { searchDegraded.Inc() }

func SearchPartial() { searchPartial.Inc() }

func OracleFailure() { oracleFailures.Inc() }

// Reservation counts reserve attempts by outcome, e.g. "confirmed" or "insufficient_capacity".
func Reservation(result string) {
	vm.GetOrCreateCounter(fmt.Sprintf(`carpool_reservations_total{result=%q}`, result)).Inc()
}

func SeatsReserved(n int) {
	vm.GetOrCreateCounter("carpool_seats_reserved_total").Add(n)
}

func ReviewSubmitted() { reviewsSubmitted.Inc() }

func RatingCache(hit bool) {
	if hit {
		ratingCacheHits.Inc()
		return
	}
	ratingCacheMiss.Inc()
}

func RideTransition(to string) {
	vm.GetOrCreateCounter(fmt.Sprintf(`carpool_ride_transitions_total{to=%q}`, to)).Inc()
}

func HTTPRequest(method, route string, status int, start time.Time) {
	vm.GetOrCreateHistogram(fmt.Sprintf(
		`carpool_http_request_duration_seconds{method=%q,route=%q,status="%d"}`,
		method, route, status,
	)).UpdateDuration(start)
}

// Handler serves every registered metric in Prometheus text format.
func Handler() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		vm.WritePrometheus(c.Writer, true)
	}
}
