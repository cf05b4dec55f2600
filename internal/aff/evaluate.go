// Package aff evaluates maximum voluntary arm strength for a posture using
// the arm force field method: an anatomical frame built from joint
// landmarks, gravity moments of the arm segments, a fixed neural network
// estimate bounded by observed envelopes, and a population strength
// distribution.
package aff

import (
	"fmt"

	"armff/internal/anatomy"
	"armff/internal/ann"
	"armff/internal/anthro"
	"armff/internal/envelope"
	"armff/internal/gravity"
	"armff/internal/stats"
)

// Model is the immutable parameter set of one evaluator: the trained
// network and the population it applies to. Build it once and share it;
// evaluation itself is stateless.
type Model struct {
	Network    *ann.Network
	Population anthro.Population
}

// DefaultModel returns the published model for the 50th-percentile female
// population.
func DefaultModel() Model {
	return Model{
		Network:    ann.Default(),
		Population: anthro.DefaultPopulation(),
	}
}

// Input is one posture evaluation request.
type Input struct {
	Joints         anatomy.JointSet
	LeftLoad       float64 // actual force at the left hand (N)
	RightLoad      float64 // actual force at the right hand (N)
	PercentCapable float64 // target population percentile, 0 < pc < 100
}

// ArmResult carries the full pipeline output for one arm. Strength is the
// gravity-adjusted maximum arm strength at the requested percentile;
// PercentCapable is the share of the population able to produce the actual
// load.
type ArmResult struct {
	Side anatomy.Side

	Kinematics anatomy.ArmKinematics
	Gravity    gravity.Effect
	Features   [ann.InputCount]float64

	RawEstimate     float64
	Code            envelope.Code
	Bounds          envelope.Bounds
	BoundedEstimate float64

	StdDev              float64
	ZeroGravityStrength float64
	GravityAssist       float64
	Strength            float64
	PercentCapable      float64
}

// Result is a full two-arm evaluation.
type Result struct {
	Frame anatomy.Frame
	Left  ArmResult
	Right ArmResult
}

// Evaluate runs the pipeline for both arms. A failure on either arm fails
// the evaluation; use EvaluateArm for per-arm partial results.
func (m Model) Evaluate(in Input) (Result, error) {
	if err := m.validate(in); err != nil {
		return Result{}, err
	}

	frame, err := anatomy.BuildFrame(in.Joints)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Frame = frame
	if res.Left, err = m.evaluateArm(frame, in, anatomy.Left); err != nil {
		return Result{}, fmt.Errorf("aff: left arm: %w", err)
	}
	if res.Right, err = m.evaluateArm(frame, in, anatomy.Right); err != nil {
		return Result{}, fmt.Errorf("aff: right arm: %w", err)
	}
	return res, nil
}

// EvaluateArm runs the pipeline for a single arm.
func (m Model) EvaluateArm(in Input, side anatomy.Side) (ArmResult, error) {
	if err := m.validate(in); err != nil {
		return ArmResult{}, err
	}
	frame, err := anatomy.BuildFrame(in.Joints)
	if err != nil {
		return ArmResult{}, err
	}
	return m.evaluateArm(frame, in, side)
}

func (m Model) validate(in Input) error {
	if m.Network == nil {
		return fmt.Errorf("aff: model has no network")
	}
	if m.Population.BodyMass <= 0 || m.Population.CV <= 0 {
		return fmt.Errorf("aff: population body mass and CV must be positive")
	}
	if in.PercentCapable <= 0 || in.PercentCapable >= 100 {
		return fmt.Errorf("aff: percent capable %.3f outside (0, 100)", in.PercentCapable)
	}
	return nil
}

func (m Model) evaluateArm(frame anatomy.Frame, in Input, side anatomy.Side) (ArmResult, error) {
	arm, err := anatomy.ProjectArm(frame, in.Joints, side)
	if err != nil {
		return ArmResult{}, err
	}

	eff, err := gravity.Compute(arm, frame.Gravity(), m.Population)
	if err != nil {
		return ArmResult{}, err
	}

	feat := ann.Features(arm)
	raw := m.Network.Estimate(feat)

	code := envelope.Classify(arm)
	bounds, err := envelope.Lookup(code)
	if err != nil {
		return ArmResult{}, err
	}
	bounded := bounds.Clamp(raw)

	dist := stats.NewDistribution(bounded, m.Population.CV)
	assist := eff.AlongForce(arm)
	zeroG := dist.StrengthAt(in.PercentCapable)

	load := in.RightLoad
	if side == anatomy.Left {
		load = in.LeftLoad
	}

	return ArmResult{
		Side:                side,
		Kinematics:          arm,
		Gravity:             eff,
		Features:            feat,
		RawEstimate:         raw,
		Code:                code,
		Bounds:              bounds,
		BoundedEstimate:     bounded,
		StdDev:              dist.StdDev(),
		ZeroGravityStrength: zeroG,
		GravityAssist:       assist,
		Strength:            zeroG + assist,
		PercentCapable:      dist.PercentCapable(load - assist),
	}, nil
}
