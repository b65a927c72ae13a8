package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "community"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "events_total",
			Help:      "Authentication outcomes by event and result.",
		},
		[]string{"event", "result"},
	)

	sessionsPurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "purged_total",
			Help:      "Expired sessions removed by the sweep job.",
		},
	)

	contentMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "mutations_total",
			Help:      "Content graph mutations by entity and action.",
		},
		[]string{"entity", "action"},
	)

	integrityFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "integrity_failures_total",
			Help:      "Derived counter invariant violations detected at write time.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		authEvents,
		sessionsPurged,
		contentMutations,
		integrityFailures,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware 记录 HTTP 请求数、耗时和并发数，路径使用路由模板避免标签爆炸。
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordAuthEvent 记录登录、登出、鉴权等事件结果。
func RecordAuthEvent(event, result string) {
	authEvents.WithLabelValues(event, result).Inc()
}

func RecordSessionsPurged(n int64) {
	if n > 0 {
		sessionsPurged.Add(float64(n))
	}
}

// RecordContentMutation 记录帖子、评论、点赞的写操作。
func RecordContentMutation(entity, action string) {
	contentMutations.WithLabelValues(entity, action).Inc()
}

func RecordIntegrityFailure() {
	integrityFailures.Inc()
}
