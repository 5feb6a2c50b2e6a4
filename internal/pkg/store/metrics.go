package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "revy_files_added_total",
		Help: "The total number of added files",
	})
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revy_status_transitions_total",
		Help: "The total number of file status changes",
	}, []string{"from", "to"})
	transitionsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "revy_status_transitions_discarded_total",
		Help: "The total number of dropped status changes",
	})
)
