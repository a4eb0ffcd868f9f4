// Package metrics expone los contadores Prometheus del servicio: decisiones de acceso,
// latencia del API externo y peticiones HTTP. Un *Collectors nil no registra nada.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors agrupa las métricas sobre un registro propio.
type Collectors struct {
	registry *prometheus.Registry

	accessDecisions  *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New crea y registra las métricas. Incluye los collectors de proceso y runtime de Go.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	c := &Collectors{
		registry: reg,
		accessDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "obra_access_decisions_total",
			Help: "Decisiones del guard de rutas por módulo y resultado",
		}, []string{"module", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "obra_upstream_request_duration_seconds",
			Help:    "Duración de las peticiones al API externo",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method", "status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "obra_http_requests_total",
			Help: "Peticiones HTTP atendidas",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "obra_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP atendidas",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.accessDecisions, c.upstreamDuration, c.httpRequests, c.httpDuration,
	)
	return c
}

// ObserveAccess cuenta una decisión del guard (allowed, denied, unauthenticated, loading).
func (c *Collectors) ObserveAccess(module, outcome string) {
	if c == nil {
		return
	}
	if module == "" {
		module = "-"
	}
	c.accessDecisions.WithLabelValues(module, outcome).Inc()
}

// ObserveUpstream registra una petición al API externo. status 0 es fallo de transporte.
func (c *Collectors) ObserveUpstream(resource, method string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.upstreamDuration.WithLabelValues(resource, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveHTTP registra una petición atendida. route es la plantilla de ruta, no el path real.
func (c *Collectors) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry expone el registro (tests).
func (c *Collectors) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler sirve el formato de exposición de Prometheus.
func (c *Collectors) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
