package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	once     sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hrms_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	permissionChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_permission_checks_total",
			Help: "Permission checks by resource, action and outcome.",
		},
		[]string{"resource", "action", "allowed"},
	)
	importedEmployees = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hrms_csv_imported_employees_total",
		Help: "Employee records created from CSV imports.",
	})
	importFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hrms_csv_import_failures_total",
		Help: "CSV imports rejected before touching the store.",
	})
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_cache_lookups_total",
			Help: "Cache lookups by cache name and result.",
		},
		[]string{"cache", "result"},
	)
)

// Init registers collectors once.
func Init() {
	once.Do(func() {
		registry.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			httpRequests,
			httpLatency,
			permissionChecks,
			importedEmployees,
			importFailures,
			cacheLookups,
		)
	})
}

func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	Init()
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

func ObservePermissionCheck(resource, action string, allowed bool) {
	Init()
	permissionChecks.WithLabelValues(resource, action, strconv.FormatBool(allowed)).Inc()
}

func AddImportedEmployees(n int) {
	Init()
	importedEmployees.Add(float64(n))
}

func IncImportFailures() {
	Init()
	importFailures.Inc()
}

func ObserveCacheLookup(cache string, hit bool) {
	Init()
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(cache, result).Inc()
}
