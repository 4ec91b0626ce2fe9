// Package middleware provides HTTP middleware for the ripple debug server.
//
// This package includes:
//   - OpenTelemetry tracing, one server span per request
//   - Prometheus request metrics registered on a caller-supplied registry
//
// # Tracing
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("ripple/debug"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global OpenTelemetry provider. Handlers reach
// the request span through SpanFromRequest.
//
// # Prometheus Metrics
//
//	r.Use(middleware.Metrics(middleware.WithRegistry(m.Registerer())))
//
// Available metrics (namespace "ripple", subsystem "http"):
//   - ripple_http_requests_total{route, status}
//   - ripple_http_request_duration_seconds{route}
//   - ripple_http_requests_in_flight
//
// Routes are labeled with the chi route pattern, so /click/{id} is one
// series no matter how many ids are clicked.
package middleware
