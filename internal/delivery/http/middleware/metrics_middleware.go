package middleware

import (
	"net/http"

	"clinic-portal/pkg/monitoring"

	"github.com/gorilla/mux"
)

// NewMetricsMiddleware labels requests by their mux route template so that
// path ids do not explode label cardinality
func NewMetricsMiddleware(metrics *monitoring.MetricsCollector) func(http.Handler) http.Handler {
	return metrics.HTTPMiddleware(RouteTemplate)
}

func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return "unmatched"
}
