package main

import (
	"context"
	"encoding/json"
	"fmt"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/ripple/internal/config"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/middleware"
	"github.com/vango-dev/ripple/pkg/render"
	"github.com/vango-dev/ripple/pkg/sched"
)

func serveCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo app with debug endpoints",
		Long: `Run the demo app on a host loop and expose it over HTTP.

Routes:
  GET  /metrics      Prometheus metrics of the runtime
  GET  /tree         rendered HTML of the document
  GET  /healthz      runtime status as JSON
  POST /click/{id}   click the element with that id

Examples:
  ripple serve
  ripple serve --addr 0.0.0.0:7070`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Debug.Addr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")

	return cmd
}

// debugServer serves one document running on loop.
type debugServer struct {
	loop    *sched.Loop
	env     *env
	root    *dom.Node
	started time.Time
}

func runServe(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg)
	loop := newLoop(cfg, logger)
	ds := &debugServer{
		loop:    loop,
		env:     newEnv(cfg, logger, loop),
		root:    dom.NewElement("main"),
		started: time.Now(),
	}
	app := newDemoApp()
	loop.Post(func() { ds.env.runtime.Run(ds.root, app.view()) })

	srv := &http.Server{
		Addr:              cfg.Debug.Addr,
		Handler:           ds.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printBanner()
	field("Runtime", ds.env.runtime.ID())
	field("Listening", "http://"+cfg.Debug.Addr)
	fmt.Println()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ds.env.logger.Info("shutting down", "addr", cfg.Debug.Addr)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (ds *debugServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(middleware.WithRegistry(ds.env.metrics.Registerer())))
	r.Use(middleware.Tracing(middleware.WithFilter(func(r *http.Request) bool {
		return r.URL.Path != "/metrics"
	})))

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(ds.env.metrics.Gatherer(), promhttp.HandlerOpts{}))
	r.Get("/tree", ds.handleTree)
	r.Get("/healthz", ds.handleHealth)
	r.Post("/click/{id}", ds.handleClick)
	return r
}

func (ds *debugServer) handleTree(w http.ResponseWriter, r *http.Request) {
	var out string
	pretty := r.URL.Query().Get("pretty") != ""
	err := ds.loop.Do(r.Context(), func() {
		out = render.New(render.Config{Pretty: pretty, LiveProperties: true}).String(ds.root.ChildNodes()...)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

type health struct {
	Status     string  `json:"status"`
	RuntimeID  string  `json:"runtime_id"`
	Animations bool    `json:"animations"`
	Passes     float64 `json:"passes"`
	Uptime     string  `json:"uptime"`
}

func (ds *debugServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := health{
		Status:     "ok",
		RuntimeID:  ds.env.runtime.ID(),
		Animations: ds.env.cfg.Animations.Enabled,
		Passes:     ds.env.metrics.Total("ripple_reconcile_passes_total"),
		Uptime:     time.Since(ds.started).Round(time.Second).String(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := ds.loop.Do(r.Context(), func() {}); err != nil {
		h.Status = "unavailable"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(h)
}

func (ds *debugServer) handleClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found := false
	err := ds.loop.Do(r.Context(), func() {
		if el := ds.root.GetElementByID(id); el != nil {
			found = true
			el.Click()
		}
	})
	switch {
	case err != nil:
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case !found:
		http.Error(w, "no element with id "+id, http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
