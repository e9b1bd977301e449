package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreErrCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meetslots",
		Subsystem: "store",
		Name:      "command_err_count",
	}, []string{"command"})
	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "meetslots",
		Subsystem: "store",
		Name:      "command_duration",
	}, []string{"command"})
)
