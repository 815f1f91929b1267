// Package metrics exposes toast and HTTP activity as Prometheus metrics.
//
// A Collector is both a toast.Observer and a chi middleware:
//
//	m := metrics.New(metrics.WithNamespace("fleet"))
//	toasts := toast.New(container, toast.WithObserver(m))
//	r := chi.NewRouter()
//	r.Use(m.Middleware)
package metrics
