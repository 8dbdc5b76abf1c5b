package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideRecorder(reg *prometheus.Registry) *metrics.PrometheusRecorder {
	return metrics.NewPrometheusRecorder(reg)
}
