package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/ripple/internal/config"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/render"
	"github.com/vango-dev/ripple/pkg/sched"
)

func demoCmd(configPath *string) *cobra.Command {
	var (
		frames int
		noAnim bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted counter and todo demo",
		Long: `Run a headless counter and todo app on a real host loop.

The demo types into inputs and clicks buttons of the rendered tree,
waits for each reconciliation pass to settle and prints the HTML.

Examples:
  ripple demo
  ripple demo --no-anim
  ripple demo --frames 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if noAnim {
				cfg.Animations.Enabled = false
			}
			return runDemo(cmd.Context(), cfg, frames)
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "f", 200, "Frames to wait for each step to settle")
	cmd.Flags().BoolVar(&noAnim, "no-anim", false, "Disable animated passes")

	return cmd
}

type demoStep struct {
	name string
	run  func(root *dom.Node)
}

func demoScript() []demoStep {
	click := func(id string) func(*dom.Node) {
		return func(root *dom.Node) {
			if el := root.GetElementByID(id); el != nil {
				el.Click()
			}
		}
	}
	typeAndAdd := func(text string) func(*dom.Node) {
		return func(root *dom.Node) {
			root.GetElementByID("draft").Input(text)
			root.GetElementByID("add").Click()
		}
	}
	return []demoStep{
		{"initial render", func(*dom.Node) {}},
		{"increment twice", func(root *dom.Node) {
			click("inc")(root)
			click("inc")(root)
		}},
		{"add a todo", typeAndAdd("write docs")},
		{"add another", typeAndAdd("ship it")},
		{"toggle the first", click("toggle-1")},
		{"clear done", click("clear")},
		{"remove the rest", click("remove-2")},
	}
}

func runDemo(parent context.Context, cfg *config.Config, maxFrames int) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg)
	loop := newLoop(cfg, logger)
	e := newEnv(cfg, logger, loop)
	app := newDemoApp()
	root := dom.NewElement("main")
	pretty := render.New(render.Config{Pretty: true, LiveProperties: true})

	printBanner()
	field("Runtime", e.runtime.ID())
	field("Animations", cfg.Animations.Enabled)
	fmt.Println()

	loopCtx, cancelLoop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		defer cancelLoop()
		if err := loop.Do(gctx, func() { e.runtime.Run(root, app.view()) }); err != nil {
			return err
		}
		started := time.Now()
		for i, step := range demoScript() {
			if err := loop.Do(gctx, func() { step.run(root) }); err != nil {
				return err
			}
			if err := settle(gctx, loop, e.sched, maxFrames, cfg.Frames.Interval.Std()); err != nil {
				return fmt.Errorf("step %q: %w", step.name, err)
			}
			var out string
			if err := loop.Do(gctx, func() { out = pretty.String(root.ChildNodes()...) }); err != nil {
				return err
			}
			header("%d. %s", i+1, step.name)
			fmt.Println(out)
		}

		success("demo finished in %s", time.Since(started).Round(time.Millisecond))
		field("Passes", humanize.Comma(int64(e.metrics.Total("ripple_reconcile_passes_total"))))
		field("Inserts", humanize.Comma(int64(e.metrics.Total("ripple_dom_inserts_total"))))
		field("Removes", humanize.Comma(int64(e.metrics.Total("ripple_dom_removes_total"))))
		field("Frames", humanize.Comma(int64(e.metrics.Total("ripple_animation_frames_total"))))
		if n := e.metrics.Total("ripple_warnings_total"); n > 0 {
			warn("%s warnings were raised", humanize.Comma(int64(n)))
		}
		return nil
	})
	return g.Wait()
}

// settle waits until the scheduler is idle and no frame is requested,
// checking once per frame interval.
func settle(ctx context.Context, loop *sched.Loop, s *sched.Scheduler, maxFrames int, interval time.Duration) error {
	for i := 0; i <= maxFrames; i++ {
		idle := false
		if err := loop.Do(ctx, func() { idle = s.Idle() && loop.PendingFrames() == 0 }); err != nil {
			return err
		}
		if idle {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("not settled after %d frames", maxFrames)
}
