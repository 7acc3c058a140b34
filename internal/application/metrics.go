package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	potsAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "potcatalog_pots_added_total",
			Help: "Total pots added to the catalog.",
		},
	)
	potsRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "potcatalog_pots_removed_total",
			Help: "Total pots removed from the catalog.",
		},
	)
	validationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "potcatalog_validation_failures_total",
			Help: "Total add attempts rejected for missing required fields.",
		},
	)
	journalFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potcatalog_journal_failures_total",
			Help: "Total journal writes that failed, by action.",
		},
		[]string{"action"},
	)
	catalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "potcatalog_catalog_size",
			Help: "Number of pots currently in the catalog.",
		},
	)
)
