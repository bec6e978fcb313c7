package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests by method, route and status"},
		[]string{"method", "path", "status"},
	)
	MessagesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "contact_messages_total", Help: "Total contact messages accepted"},
	)
)

func Register() {
	prometheus.MustRegister(RequestsTotal, MessagesCreated)
}
