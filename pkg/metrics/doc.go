// Package metrics exposes Prometheus collectors for the ripple runtime.
//
// A Metrics value is created once per runtime and handed to the scheduler,
// the reconciler and the warning channel. All recording methods are safe to
// call on a nil *Metrics, so components can run without instrumentation.
//
//	m := metrics.New(metrics.WithNamespace("myapp"))
//	http.Handle("/metrics", promhttp.HandlerFor(m.Gatherer(), promhttp.HandlerOpts{}))
package metrics
