package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vango-dev/ripple/internal/config"
	"github.com/vango-dev/ripple/pkg/docs"
	"github.com/vango-dev/ripple/pkg/dom"
	"github.com/vango-dev/ripple/pkg/reactive"
	"github.com/vango-dev/ripple/pkg/sched"
)

func benchCmd(configPath *string) *cobra.Command {
	var (
		vars       int
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure propagation and reconciliation latency",
		Long: `Run propagation workloads on a stepped host and report the
latency of one update, from Var.Set until the host is idle again.

Workloads:
  diamond   N independent diamonds (a = v+1, b = v*2, c = a+b)
  fanout    one source read by N views joined by Sequence
  keyed     a keyed list of N items rotated by one each update

Examples:
  ripple bench
  ripple bench --vars 256 --iterations 10000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if vars > 0 {
				cfg.Bench.Vars = vars
			}
			if iterations > 0 {
				cfg.Bench.Iterations = iterations
			}
			return runBench(cfg)
		},
	}

	cmd.Flags().IntVarP(&vars, "vars", "n", 0, "Workload width (default from config)")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "Updates per workload (default from config)")

	return cmd
}

// workload prepares its graph on e and returns the update to time.
type workload struct {
	name  string
	setup func(e *env, n int) (update func(i int))
}

var workloads = []workload{
	{"diamond", setupDiamond},
	{"fanout", setupFanout},
	{"keyed", setupKeyed},
}

func runBench(cfg *config.Config) error {
	cfg.Animations.Enabled = false
	logger := newLogger(cfg)
	n, iters := cfg.Bench.Vars, cfg.Bench.Iterations
	if n <= 0 || iters <= 0 {
		return fmt.Errorf("bench needs positive vars and iterations, got %d and %d", n, iters)
	}

	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("ripple: %s updates, width %s", humanize.Comma(int64(iters)), humanize.Comma(int64(n))))
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"workload", "avg", "min", "p75", "p99", "max", "updates/s", "alloc"})

	for _, w := range workloads {
		st := sched.NewStepper()
		e := newEnv(cfg, logger, st)
		update := w.setup(e, n)
		st.Flush()

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			start := time.Now()
			update(i)
			st.Flush()
			tach.AddTime(time.Since(start))
		}
		runtime.ReadMemStats(&after)

		calc := tach.Calc()
		tbl.AppendRow(table.Row{
			w.name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			humanize.CommafWithDigits(calc.Rate.Second, 0),
			humanize.Bytes(after.TotalAlloc - before.TotalAlloc),
		})
	}

	tbl.Render()
	return nil
}

func setupDiamond(e *env, n int) func(int) {
	srcs := make([]*reactive.Var[int], n)
	for i := range srcs {
		v := reactive.NewVar(i)
		a := reactive.Map(v.View(), func(x int) int { return x + 1 })
		b := reactive.Map(v.View(), func(x int) int { return x * 2 })
		c := reactive.Map2(a, b, func(x, y int) int { return x + y })
		reactive.Sink(e.sched, c, func(int) {})
		srcs[i] = v
	}
	return func(i int) {
		v := srcs[i%n]
		v.Set(v.Get() + 1)
	}
}

func setupFanout(e *env, n int) func(int) {
	src := reactive.NewVar(0)
	views := make([]reactive.View[int], n)
	for i := range views {
		k := i
		views[i] = reactive.Map(src.View(), func(x int) int { return x + k })
	}
	sum := reactive.Map(reactive.Sequence(views), func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})
	reactive.Sink(e.sched, sum, func(int) {})
	return func(i int) { src.Set(i + 1) }
}

func setupKeyed(e *env, n int) func(int) {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	list := reactive.NewVar(items)
	root := dom.NewElement("ul")
	e.runtime.Run(root, docs.ConvertBy(list.View(), func(x int) int { return x }, func(x int) docs.Doc {
		return docs.Element("li", nil, docs.Text(strconv.Itoa(x)))
	}))
	return func(int) {
		list.Update(func(xs []int) []int {
			out := make([]int, 0, len(xs))
			out = append(out, xs[1:]...)
			return append(out, xs[0])
		})
	}
}
