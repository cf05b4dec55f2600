package main

import (
	"flag"
	"fmt"
	"os"

	"armff/internal/aff"
	"armff/internal/config"
	"armff/internal/posture"
	"armff/internal/viz"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	postureFile := flag.String("posture", "", "Posture JSON file (default: built-in reference posture)")
	leftLoad := flag.Float64("lload", -1, "Left hand actual load in N (default: posture file value)")
	rightLoad := flag.Float64("rload", -1, "Right hand actual load in N (default: posture file value)")
	pc := flag.Float64("pc", 0, "Target percent capable (default: posture file value or 75)")
	renderPath := flag.String("render", "", "Write a posture diagram WebP to this path")
	size := flag.Int("size", 0, "Diagram size in pixels (default: 512)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{PercentCapable: *pc, DiagramSize: *size})

	p := posture.Reference()
	if *postureFile != "" {
		var err error
		p, err = posture.Load(*postureFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading posture: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No posture file given; using the built-in reference posture.")
	}

	if *leftLoad >= 0 {
		p.LeftLoad = *leftLoad
	}
	if *rightLoad >= 0 {
		p.RightLoad = *rightLoad
	}
	if *pc > 0 {
		p.PercentCapable = *pc
	} else if p.PercentCapable == 0 {
		p.PercentCapable = cfg.PercentCapable
	}

	model := cfg.Model()
	res, err := model.Evaluate(p.Input())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Population: body mass %.1f kg, CV %.3f, percent capable %.0f\n",
		model.Population.BodyMass, model.Population.CV, p.Input().PercentCapable)
	fmt.Printf("Actual loads: left %.1f N, right %.1f N\n", p.LeftLoad, p.RightLoad)
	fmt.Println("------------------------------------------------------------")
	printArm(res.Left, p.LeftLoad)
	printArm(res.Right, p.RightLoad)

	if *renderPath != "" {
		img := viz.Render(p.Joints, res, viz.Options{Size: cfg.DiagramSize, Supersample: cfg.Supersample})
		if cfg.Supersample > 1 {
			img = viz.Downsample(img, cfg.DiagramSize)
		}
		if err := viz.SaveWebP(img, *renderPath); err != nil {
			fmt.Fprintf(os.Stderr, "Diagram write failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Diagram: %s\n", *renderPath)
	}
}

func printArm(arm aff.ArmResult, load float64) {
	fmt.Printf("%-5s MAS with gravity: %8.2f N    percent capable of %.1f N: %6.2f%%\n",
		arm.Side, arm.Strength, load, arm.PercentCapable)
	fmt.Printf("      mean 0G MAS %.2f N (raw %.2f, bounds [%.1f, %.1f]), gravity assist %+.2f N\n",
		arm.BoundedEstimate, arm.RawEstimate, arm.Bounds.Min, arm.Bounds.Max, arm.GravityAssist)
}
