/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	PrometheusNamespace = "weblets"

	MetricDescriptorsCreated = "descriptors_created_total"
	MetricDescriptorsFailed  = "descriptors_failed_total"
)

func newCounterVecMetric(metricName string, docString string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: PrometheusNamespace,
			Name:      metricName,
			Help:      docString,
		},
		append([]string{}, labels...),
	)
}

var (
	descriptorsCreated = newCounterVecMetric(MetricDescriptorsCreated, "Workload descriptors successfully constructed", "kind")
	descriptorsFailed  = newCounterVecMetric(MetricDescriptorsFailed, "Workload descriptor constructions which failed", "kind")

	// our own registry, we don't want all the go stats
	metricsRegistry = prometheus.NewRegistry()
)

func init() {
	metricsRegistry.MustRegister(descriptorsCreated, descriptorsFailed)
}

func MetricsGatherer() prometheus.Gatherer {
	return metricsRegistry
}

// WriteMetrics dumps counters in the node-exporter textfile collector format
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, metricsRegistry)
}
