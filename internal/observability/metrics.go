package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics mengumpulkan metrik Prometheus untuk eksekusi perintah.
type Metrics struct {
	registry        *prometheus.Registry
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	storeSaves      *prometheus.CounterVec
}

// NewMetrics menginisialisasi registry dan metrik dasar.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_commands_total",
		Help: "Jumlah perintah berdasarkan jenis dan hasil.",
	}, []string{"command", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "registrar_command_duration_seconds",
		Help:    "Durasi eksekusi perintah per jenis.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	saves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_store_saves_total",
		Help: "Jumlah penyimpanan dokumen per target.",
	}, []string{"target"})
	registry.MustRegister(commands, duration, saves)
	return &Metrics{
		registry:        registry,
		commandsTotal:   commands,
		commandDuration: duration,
		storeSaves:      saves,
	}
}

// ObserveCommand mencatat satu perintah beserta hasil dan durasinya.
func (m *Metrics) ObserveCommand(command, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(command, outcome).Inc()
	m.commandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// ObserveSave mencatat satu penyimpanan dokumen.
func (m *Metrics) ObserveSave(target string) {
	if m == nil {
		return
	}
	m.storeSaves.WithLabelValues(target).Inc()
}

// Gatherer mengekspos registry untuk pembacaan metrik.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.DefaultGatherer
	}
	return m.registry
}

// WriteText menulis seluruh metrik dalam format teks Prometheus.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("observability: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("observability: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
