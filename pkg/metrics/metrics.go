// Package metrics expõe os contadores Prometheus do console. Todos os métodos
// aceitam receptor nulo para que testes e componentes opcionais não precisem de registro.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_console"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	cacheEvictions  prometheus.Counter
	backendRequests *prometheus.CounterVec
	commands        *prometheus.CounterVec
	schedulerRuns   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP atendidas, por rota e status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latência das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_cache_lookups_total",
			Help:      "Consultas ao cache de leitura, por escopo e resultado (hit/miss).",
		}, []string{"scope", "result"}),
		cacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_cache_invalidated_entries_total",
			Help:      "Entradas removidas do cache por invalidação.",
		}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Chamadas ao backend REST, por método e status.",
		}, []string{"method", "status"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_commands_total",
			Help:      "Comandos de campanha executados, por tipo e resultado.",
		}, []string{"kind", "result"}),
		schedulerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_runs_total",
			Help:      "Execuções dos jobs agendados, por job e resultado.",
		}, []string{"job", "result"}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.cacheLookups,
		m.cacheEvictions,
		m.backendRequests,
		m.commands,
		m.schedulerRuns,
	)

	return m
}

// Handler serve o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) CacheLookup(scope string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(scope, result).Inc()
}

func (m *Metrics) CacheInvalidated(entries int) {
	if m == nil || entries <= 0 {
		return
	}
	m.cacheEvictions.Add(float64(entries))
}

// BackendRequest registra uma chamada ao backend; status 0 significa falha de transporte
func (m *Metrics) BackendRequest(method string, status int) {
	if m == nil {
		return
	}
	label := strconv.Itoa(status)
	if status == 0 {
		label = "transport_error"
	}
	m.backendRequests.WithLabelValues(method, label).Inc()
}

func (m *Metrics) Command(kind string, err error) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(kind, resultLabel(err)).Inc()
}

func (m *Metrics) SchedulerRun(job string, err error) {
	if m == nil {
		return
	}
	m.schedulerRuns.WithLabelValues(job, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
