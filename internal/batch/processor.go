// Package batch evaluates many postures concurrently and writes a results
// manifest plus optional diagrams.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"armff/internal/aff"
	"armff/internal/posture"
	"armff/internal/viz"
)

// Config holds the shared resources of a batch run.
type Config struct {
	Model          aff.Model
	OutputDir      string
	RenderDiagrams bool
	DiagramSize    int
	Supersample    int
	Workers        int
}

// ArmSummary is the per-arm slice of a batch result.
type ArmSummary struct {
	Strength        float64 `json:"strength_n"`
	PercentCapable  float64 `json:"percent_capable"`
	BoundedEstimate float64 `json:"bounded_estimate_n"`
	GravityAssist   float64 `json:"gravity_assist_n"`
}

// Result holds the outcome of evaluating one posture.
type Result struct {
	Name    string     `json:"name"`
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
	Left    ArmSummary `json:"left,omitempty"`
	Right   ArmSummary `json:"right,omitempty"`
	Image   string     `json:"image,omitempty"`
}

// Run evaluates all postures using a worker pool. Results are positionally
// aligned with the input slice.
func Run(cfg Config, postures []posture.Posture) []Result {
	total := len(postures)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f postures/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	idxChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxChan {
				results[idx] = processPosture(cfg, postures[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range postures {
		idxChan <- i
	}
	close(idxChan)

	wg.Wait()
	close(done)

	return results
}

func processPosture(cfg Config, p posture.Posture) Result {
	res, err := cfg.Model.Evaluate(p.Input())
	if err != nil {
		return Result{Name: p.Name, Error: err.Error()}
	}

	out := Result{
		Name:    p.Name,
		Success: true,
		Left:    summarize(res.Left),
		Right:   summarize(res.Right),
	}

	if cfg.RenderDiagrams {
		opts := viz.Options{Size: cfg.DiagramSize, Supersample: cfg.Supersample}
		img := viz.Render(p.Joints, res, opts)
		if cfg.Supersample > 1 {
			img = viz.Downsample(img, cfg.DiagramSize)
		}
		rel := p.Name + ".webp"
		if err := viz.SaveWebP(img, filepath.Join(cfg.OutputDir, rel)); err != nil {
			return Result{Name: p.Name, Error: err.Error()}
		}
		out.Image = rel
	}

	return out
}

func summarize(arm aff.ArmResult) ArmSummary {
	return ArmSummary{
		Strength:        arm.Strength,
		PercentCapable:  arm.PercentCapable,
		BoundedEstimate: arm.BoundedEstimate,
		GravityAssist:   arm.GravityAssist,
	}
}
