// Package metrics exports a finished validation run in the Prometheus
// textfile format, for node_exporter's textfile collector or CI dashboards.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"plugincheck/internal/report"
	"plugincheck/internal/validate"
)

const namespace = "plugincheck"

// Gather builds a registry holding the run's gauges.
func Gather(r *report.Report, res validate.Result) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	errorsTotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "errors",
		Help:      "Violations recorded by the last validation run.",
	})
	passed := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "passed",
		Help:      "1 when the last validation run recorded no violations.",
	})
	plugins := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "plugins",
		Help:      "Plugins listed in the marketplace manifest and validated.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "duration_seconds",
		Help:      "Wall time of the last validation run.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last validation run started.",
	})
	pluginErrors := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "plugin_errors",
		Help:      "Violations attributed to each plugin.",
	}, []string{"plugin"})
	resources := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "resources",
		Help:      "Resources discovered per plugin and kind, valid or not.",
	}, []string{"plugin", "kind"})

	for _, c := range []prometheus.Collector{errorsTotal, passed, plugins, duration, lastRun, pluginErrors, resources} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("METRICS_REGISTER: %w", err)
		}
	}

	errorsTotal.Set(float64(r.ErrorCount()))
	if r.Passed() {
		passed.Set(1)
	}
	plugins.Set(float64(len(res.Plugins)))
	duration.Set(time.Since(r.StartedAt).Seconds())
	lastRun.Set(float64(r.StartedAt.Unix()))
	for _, p := range res.Plugins {
		pluginErrors.WithLabelValues(p.Ref.Name).Add(float64(p.Errors))
	}
	for _, name := range r.Plugins() {
		for _, kind := range report.Kinds {
			resources.WithLabelValues(name, kind).Set(float64(r.Count(name, kind)))
		}
	}
	return reg, nil
}

// WriteTextfile gathers the run and writes it to path.
func WriteTextfile(path string, r *report.Report, res validate.Result) error {
	reg, err := Gather(r, res)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("METRICS_WRITE: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("METRICS_WRITE: %w", err)
	}
	return nil
}
