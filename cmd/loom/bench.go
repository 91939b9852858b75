package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/runtime"
	"github.com/loom-ui/loom/pkg/vdom"
)

func benchCmd() *cobra.Command {
	var (
		sizes []int
		iters int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark keyed-list reconciliation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(sizes, iters, seed)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "rows", []int{100, 1000, 10000}, "list sizes to benchmark")
	cmd.Flags().IntVar(&iters, "iterations", 100, "render passes per size")
	cmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")
	return cmd
}

func benchList(order []int) *vdom.VNode {
	return vdom.Ul(vdom.Range(order, func(id int, _ int) *vdom.VNode {
		return vdom.Li(vdom.Key(id), vdom.Textf("row %d", id))
	}))
}

// runBench mounts a keyed list once per size, then measures full
// shuffle-and-render passes.
func runBench(sizes []int, iters int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"rows", "iterations", "avg", "p75", "p99", "max", "mutations"})

	for _, size := range sizes {
		order := make([]int, size)
		for i := range order {
			order[i] = i
		}

		container := dom.NewElement("main")
		rt, err := runtime.Attach(benchList(order), container)
		if err != nil {
			return err
		}

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
			start := time.Now()
			if err := rt.Render(benchList(order)); err != nil {
				return err
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		table.Append([]string{
			humanize.Comma(int64(size)),
			humanize.Comma(int64(iters)),
			calc.Time.Avg.String(),
			calc.Time.P75.String(),
			calc.Time.P99.String(),
			calc.Time.Max.String(),
			humanize.Comma(int64(rt.Mutations())),
		})
		rt.Unmount()
	}

	table.Render()
	return nil
}
