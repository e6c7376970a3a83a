package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// documentWrites counts accepted document mutations by operation and persist status
	documentWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_document_writes_total",
			Help: "Total grid document writes by operation and status",
		},
		[]string{"operation", "status"},
	)

	persistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grid_persist_failures_total",
			Help: "Total failed flushes of the grid document to storage",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
