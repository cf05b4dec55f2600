// affinspect dumps every intermediate quantity of one evaluation: the
// anatomical frame, projected kinematics, segment moments, network inputs,
// envelope codes and the statistics that produce the final numbers.
package main

import (
	"flag"
	"fmt"
	"os"

	"armff/internal/aff"
	"armff/internal/config"
	"armff/internal/mathutil"
	"armff/internal/posture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	postureFile := flag.String("posture", "", "Posture JSON file (default: built-in reference posture)")

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
	cfg.Resolve(config.Flags{})

	p := posture.Reference()
	if *postureFile != "" {
		var err error
		p, err = posture.Load(*postureFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading posture: %v\n", err)
			os.Exit(1)
		}
	}

	res, err := cfg.Model().Evaluate(p.Input())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Posture: %s\n\n", p.Name)
	fmt.Println("Shoulder axis system (rows in global coordinates):")
	printVec("  anterior", res.Frame.Anterior())
	printVec("  superior", res.Frame.Superior())
	printVec("  lateral ", res.Frame.Lateral())
	printVec("  gravity (frame)", res.Frame.Gravity())

	inspectArm(res.Left)
	inspectArm(res.Right)
}

func inspectArm(arm aff.ArmResult) {
	fmt.Printf("\n=== %s arm ===\n", arm.Side)
	fmt.Println("Kinematics (frame coordinates, lateral = away from midline):")
	printVec("  hand ", arm.Kinematics.Hand)
	printVec("  wrist", arm.Kinematics.Wrist)
	printVec("  elbow", arm.Kinematics.Elbow)
	printVec("  force", arm.Kinematics.Force)

	g := arm.Gravity
	fmt.Println("Segment centers of gravity:")
	printVec("  upper arm", g.UpperArmCog)
	printVec("  forearm  ", g.ForearmCog)
	printVec("  hand     ", g.HandCog)
	fmt.Println("Moments about the shoulder (N·m):")
	printVec("  upper arm", g.UpperArmMoment)
	printVec("  forearm  ", g.ForearmMoment)
	printVec("  hand     ", g.HandMoment)
	printVec("  total    ", g.TotalMoment)
	fmt.Printf("  resultant %.5f N·m, reach %.5f m\n", g.MomentResultant, g.Reach)
	printVec("  assist dir", g.AssistDir)
	printVec("  force effect", g.ForceEffect)
	fmt.Printf("  force effect resultant %.5f N\n", g.Resultant)

	fmt.Println("Network inputs:")
	for i, v := range arm.Features {
		fmt.Printf("  [%2d] %12.7f\n", i, v)
	}

	fmt.Printf("Raw estimate %.4f N, code %s, bounds [%.1f, %.1f], bounded %.4f N\n",
		arm.RawEstimate, arm.Code, arm.Bounds.Min, arm.Bounds.Max, arm.BoundedEstimate)
	fmt.Printf("SD %.4f N, zero-G strength %.4f N, gravity assist %+.4f N\n",
		arm.StdDev, arm.ZeroGravityStrength, arm.GravityAssist)
	fmt.Printf("MAS with gravity %.4f N, percent capable %.4f%%\n",
		arm.Strength, arm.PercentCapable)
}

func printVec(label string, v mathutil.Vec3) {
	fmt.Printf("%s  [%10.6f %10.6f %10.6f]\n", label, v[0], v[1], v[2])
}
