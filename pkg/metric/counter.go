package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events, partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a Prometheus backed IncrementalCounter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Noop discards increments.
type Noop struct{}

func (Noop) Increment(...string) {}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// NavCounters groups the counters maintained while rendering navigation menus.
type NavCounters struct {
	// Renders counts rendered menus by variant and insertion mode.
	Renders IncrementalCounter

	// Toggles counts mobile menu state changes by resulting state.
	Toggles IncrementalCounter

	// Pages counts processed site files by outcome.
	Pages IncrementalCounter
}

// NoopNavCounters returns counters that discard every increment.
func NoopNavCounters() NavCounters {
	return NavCounters{Renders: Noop{}, Toggles: Noop{}, Pages: Noop{}}
}

// NewNavCounters registers the navigation counters with reg.
func NewNavCounters(reg prometheus.Registerer) NavCounters {
	return NavCounters{
		Renders: NewCounterWithRegistry(reg, "sitenav_renders_total",
			"Number of navigation menus rendered.", "variant", "mode"),
		Toggles: NewCounterWithRegistry(reg, "sitenav_toggles_total",
			"Number of mobile menu state changes.", "state"),
		Pages: NewCounterWithRegistry(reg, "sitenav_pages_total",
			"Number of site files processed.", "outcome"),
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
