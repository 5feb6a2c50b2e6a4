package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wizardsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revy_wizards_started_total",
		Help: "The total number of started wizards",
	}, []string{"flow"})
	wizardCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revy_wizard_commits_total",
		Help: "The total number of finished wizards",
	}, []string{"flow", "result"})
)
