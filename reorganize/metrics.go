// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reorganize

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "coin"
	metricsSubsystem = "reorganize"
)

// Metrics are the Prometheus metrics of a [Pass].
type Metrics struct {
	// ShapesTotal counts visited shapes by result.
	// Labels: result (replaced, or the reason a shape is unchanged)
	ShapesTotal *prometheus.CounterVec

	// TrianglesTotal counts the triangles of replaced shapes.
	TrianglesTotal prometheus.Counter

	// VerticesTotal counts the distinct vertices of replaced shapes.
	VerticesTotal prometheus.Counter
}

// NewMetrics returns new metrics registered with the given registerer.
// It panics if the metrics are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ShapesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "shapes_total",
			Help:      "Total shapes visited by result",
		}, []string{"result"}),
		TrianglesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "triangles_total",
			Help:      "Total triangles in replaced shapes",
		}),
		VerticesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "vertices_total",
			Help:      "Total distinct vertices in replaced shapes",
		}),
	}
}

func (m *Metrics) record(r Reasons, triangles, vertices int) {
	if m == nil {
		return
	}
	if r != ReasonNone {
		m.ShapesTotal.WithLabelValues(r.String()).Inc()
		return
	}
	m.ShapesTotal.WithLabelValues("replaced").Inc()
	m.TrianglesTotal.Add(float64(triangles))
	m.VerticesTotal.Add(float64(vertices))
}
