// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what the balancing engine does. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	Inserts    prometheus.Counter
	Duplicates prometheus.Counter
	Rotations  *prometheus.CounterVec
	Size       prometheus.Gauge
	Height     prometheus.Gauge
}

// NewMetrics creates the tree metrics and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, labels prometheus.Labels) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Inserts: f.NewCounter(prometheus.CounterOpts{
			Name:        "avl_inserts_total",
			Help:        "number of keys added to the tree",
			ConstLabels: labels,
		}),
		Duplicates: f.NewCounter(prometheus.CounterOpts{
			Name:        "avl_duplicate_inserts_total",
			Help:        "number of inserts ignored because the key was present",
			ConstLabels: labels,
		}),
		Rotations: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "avl_rotations_total",
			Help:        "number of rebalancing rotations by case",
			ConstLabels: labels,
		}, []string{"case"}),
		Size: f.NewGauge(prometheus.GaugeOpts{
			Name:        "avl_tree_size",
			Help:        "number of nodes in the tree",
			ConstLabels: labels,
		}),
		Height: f.NewGauge(prometheus.GaugeOpts{
			Name:        "avl_tree_height",
			Help:        "height of the tree",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) observeInsert(added bool, r rotation) {
	if m == nil {
		return
	}
	if !added {
		m.Duplicates.Inc()
		return
	}
	m.Inserts.Inc()
	if r != rotateNone {
		m.Rotations.WithLabelValues(r.String()).Inc()
	}
}

func (m *Metrics) observeShape(size, height int) {
	if m == nil {
		return
	}
	m.Size.Set(float64(size))
	m.Height.Set(float64(height))
}
