// Command wire-fuzz stress-tests the init buffer decoder and the panel with
// every registered preset and a batch of random schemas.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"hwui/internal/app"
	"hwui/internal/core"
	"hwui/internal/panel"
	_ "hwui/internal/presets/mame"
	_ "hwui/internal/presets/vstbridge"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	iterations := flag.Int("iterations", 200, "random schemas to generate")
	mutations := flag.Int("mutations", 32, "byte mutations per schema")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()
	log := app.NewLogger(false)

	jobs := buildJobs(*iterations, *seed)
	fmt.Printf("Fuzzing %d schemas (%d workers, %d mutations each)\n", len(jobs), *workers, *mutations)

	in := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				results <- check(j, *mutations)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	start := time.Now()
	var all []result
	failed := 0
	for res := range results {
		all = append(all, res)
		if len(res.violations) > 0 {
			failed++
			for _, v := range res.violations {
				log.Error("violation", "schema", res.name, "detail", v)
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })

	fmt.Printf("\n%-24s %6s %6s %6s %6s %s\n", "schema", "bytes", "params", "trunc", "mut", "status")
	for _, res := range all {
		if res.name[0] == '#' && len(res.violations) == 0 {
			continue
		}
		status := "ok"
		if len(res.violations) > 0 {
			status = fmt.Sprintf("%d violations", len(res.violations))
		}
		fmt.Printf("%-24s %6d %6d %6d %6d %s\n", res.name, res.bytes, res.params, res.truncations, res.mutations, status)
	}
	fmt.Printf("\n%d schemas, %d failed, %s\n", len(all), failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

// buildJobs returns one job per registered preset followed by n random
// schemas, alternating between the themes.
func buildJobs(n int, seed int64) []job {
	var jobs []job
	for _, name := range app.PresetNames() {
		preset := core.Presets()[name](nil)
		theme, ok := panel.ThemeByName(preset.Theme)
		if !ok {
			continue
		}
		jobs = append(jobs, job{name: name, theme: theme, data: preset.Data, seed: seed})
	}
	themes := []panel.Theme{panel.MAME(), panel.VSTBridge()}
	rng := core.NewRNG(seed)
	for i := 0; i < n; i++ {
		theme := themes[i%len(themes)]
		data := randomSchema(rng, theme.Wire, theme.Wire.Limits.MaxParams+8)
		jobs = append(jobs, job{name: fmt.Sprintf("#%04d-%s", i, theme.Name), theme: theme, data: data, seed: seed + int64(i)})
	}
	return jobs
}
