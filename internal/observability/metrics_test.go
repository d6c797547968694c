package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCommandCountsByOutcome(t *testing.T) {
	metrics := NewMetrics()

	metrics.ObserveCommand("delete", "denied", time.Millisecond)
	metrics.ObserveCommand("delete", "ok", time.Millisecond)
	metrics.ObserveCommand("delete", "ok", time.Millisecond)

	if got := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("delete", "ok")); got != 2 {
		t.Fatalf("expected 2 ok deletes, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("delete", "denied")); got != 1 {
		t.Fatalf("expected 1 denied delete, got %v", got)
	}
	if n := testutil.CollectAndCount(metrics.commandDuration); n != 1 {
		t.Fatalf("expected one histogram series, got %d", n)
	}
}

func TestWriteTextExposesFamilies(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveCommand("list", "ok", time.Millisecond)
	metrics.ObserveSave("persons")

	var buf bytes.Buffer
	if err := metrics.WriteText(&buf); err != nil {
		t.Fatalf("write text: %v", err)
	}
	body := buf.String()
	for _, name := range []string{"registrar_commands_total", "registrar_command_duration_seconds", "registrar_store_saves_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected body to contain %s, got: %s", name, body)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.ObserveCommand("list", "ok", time.Millisecond)
	metrics.ObserveSave("persons")
	if metrics.Gatherer() == nil {
		t.Fatal("expected default gatherer fallback")
	}
}
