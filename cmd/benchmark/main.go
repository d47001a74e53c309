package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/delaneyj/propertyparty/property"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkBindingChains(true)
	benchmarkTwoWayChains(true)
	benchmarkTrackedScopes(true)
}

// benchmarkBindingChains builds w chains of h chained bindings off a single
// source, then repeatedly bumps the source and pulls every leaf. The digest
// column hashes all leaf values so runs can be compared for correctness,
// not just speed.
func benchmarkBindingChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Binding Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "digest"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := property.NewReactiveSystem()
			src := property.New(rs, 1)
			leaves := make([]*property.Property[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					next := property.New(rs, 0)
					next.SetBinding(func() int {
						return prev.Get() + 1
					})
					last = next
				}
				leaves = append(leaves, last)
			}

			digest := xxhash.New()
			var buf [8]byte
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				for _, leaf := range leaves {
					binary.LittleEndian.PutUint64(buf[:], uint64(leaf.Get()))
					digest.Write(buf[:])
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkTwoWayChains links n properties onto one shared cell, writes one
// end and reads all the others.
func benchmarkTwoWayChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Two-Way Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range []int{2, 10, 100, 1_000} {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rs := property.NewReactiveSystem()
		props := make([]*property.Property[int], n)
		for i := range props {
			props[i] = property.New(rs, i)
		}
		for i := 1; i < n; i++ {
			property.LinkTwoWay(props[i-1], props[i])
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			props[0].Set(i)
			for _, p := range props {
				if got := p.Get(); got != i {
					log.Panicf("link out of sync: got %d want %d", got, i)
				}
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("linked: %d", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkTrackedScopes measures a render-scope style loop: a tracker
// evaluates w bound properties, one source changes, and only dirty scopes
// re-evaluate.
func benchmarkTrackedScopes(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Tracked Scopes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rs := property.NewReactiveSystem()
		src := property.New(rs, 0)
		props := make([]*property.Property[int], w)
		scopes := make([]*property.Tracker, w)
		for i := range scopes {
			p := property.New(rs, 0)
			p.SetBinding(func() int {
				return src.Get() * 2
			})
			props[i] = p
			scopes[i] = property.NewTracker(rs)
		}

		sink := 0
		for i := 0; i < iters; i++ {
			start := time.Now()
			src.Set(i + 1)
			for j, scope := range scopes {
				p := props[j]
				scope.EvaluateIfDirty(func() { sink += p.Get() })
			}
			tach.AddTime(time.Since(start))
		}
		_ = sink

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("scopes: %d", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
