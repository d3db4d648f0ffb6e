// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecipesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodgram_recipes_created_total",
		Help: "Recipes created.",
	})

	RecipesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodgram_recipes_deleted_total",
		Help: "Recipes deleted.",
	})

	// MembershipToggles counts favorite, shopping cart and subscription
	// changes. action is "add" or "remove".
	MembershipToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_membership_toggles_total",
			Help: "Favorite, shopping cart and subscription changes.",
		},
		[]string{"kind", "action"},
	)

	ShoppingListDownloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodgram_shopping_list_downloads_total",
		Help: "Shopping lists rendered.",
	})
)
