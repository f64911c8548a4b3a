package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// searchDuration records the wall time of a search call, including the
	// document fetch, by outcome.
	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docsearch_search_duration_seconds",
			Help:    "Duration of document searches in seconds.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"outcome"},
	)

	// searchResults records how many results successful searches return.
	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docsearch_search_results",
			Help:    "Number of results returned per successful search.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	// searchesTotal counts searches by outcome.
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsearch_searches_total",
			Help: "Total number of document searches.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(searchDuration, searchResults, searchesTotal)
}
