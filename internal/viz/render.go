// Package viz renders a posture evaluation as a frontal stick-figure
// diagram: trunk and arms, force arrows at the hands, gravity-effect
// arrows, arm color keyed to percent capable.
package viz

import (
	"image"
	"image/color"
	"math"

	"armff/internal/aff"
	"armff/internal/anatomy"
	"armff/internal/mathutil"
)

// Options controls diagram output.
type Options struct {
	Size        int // output edge length in pixels
	Supersample int // render at Size×Supersample, then downsample
}

// DefaultOptions matches the batch renderer defaults.
func DefaultOptions() Options {
	return Options{Size: 512, Supersample: 2}
}

func (o Options) normalized() Options {
	if o.Size <= 0 {
		o.Size = 512
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	return o
}

var (
	trunkColor = color.NRGBA{70, 70, 80, 255}
	jointColor = color.NRGBA{35, 35, 40, 255}
	forceColor = color.NRGBA{40, 90, 200, 255}
	gfeColor   = color.NRGBA{150, 110, 30, 255}
)

// armColor maps percent capable onto a red-to-green ramp.
func armColor(percentCapable float64) color.NRGBA {
	t := percentCapable / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.NRGBA{
		R: uint8(200 - 140*t),
		G: uint8(60 + 130*t),
		B: 60,
		A: 255,
	}
}

// Render draws the evaluated posture. The view is frontal: the global
// lateral-left axis maps to screen-left, superior maps to screen-up.
func Render(joints anatomy.JointSet, res aff.Result, opts Options) *image.NRGBA {
	opts = opts.normalized()
	size := opts.Size * opts.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	c := newCanvas(img, joints)
	stroke := float64(size) / 110

	// Trunk and shoulder line.
	c.line(joints.L5S1, joints.C7T1, trunkColor, stroke*1.4)
	c.line(joints.LeftShoulder, joints.RightShoulder, trunkColor, stroke*1.4)

	// Arms, colored by the percent-capable outcome.
	lc := armColor(res.Left.PercentCapable)
	rc := armColor(res.Right.PercentCapable)
	c.polyline([]mathutil.Vec3{joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist, joints.LeftHand}, lc, stroke)
	c.polyline([]mathutil.Vec3{joints.RightShoulder, joints.RightElbow, joints.RightWrist, joints.RightHand}, rc, stroke)

	for _, j := range []mathutil.Vec3{
		joints.LeftShoulder, joints.LeftElbow, joints.LeftWrist, joints.LeftHand,
		joints.RightShoulder, joints.RightElbow, joints.RightWrist, joints.RightHand,
		joints.C7T1, joints.L5S1,
	} {
		c.dot(j, jointColor, stroke*1.1)
	}

	// Force direction arrows at the hands, fixed display length.
	arrowLen := c.span * 0.18
	c.arrow(joints.LeftHand, joints.LeftForce.Normalize().Scale(arrowLen), forceColor, stroke*0.8)
	c.arrow(joints.RightHand, joints.RightForce.Normalize().Scale(arrowLen), forceColor, stroke*0.8)

	// Gravity force effect arrows, scaled relative to the force arrows by
	// effect magnitude (capped so extreme moments stay on canvas).
	c.gfeArrow(joints.LeftHand, res.Frame, res.Left, arrowLen, stroke)
	c.gfeArrow(joints.RightHand, res.Frame, res.Right, arrowLen, stroke)

	return img
}

// canvas maps global coordinates onto the image with a fitted frontal
// projection.
type canvas struct {
	img    *image.NRGBA
	scale  float64
	cx, cy float64 // world center
	px, py float64 // pixel center
	span   float64 // world extent of the drawable area
}

func newCanvas(img *image.NRGBA, joints anatomy.JointSet) *canvas {
	pts := []mathutil.Vec3{
		joints.LeftHand, joints.LeftWrist, joints.LeftElbow, joints.LeftShoulder,
		joints.RightHand, joints.RightWrist, joints.RightElbow, joints.RightShoulder,
		joints.C7T1, joints.L5S1,
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-6 {
		span = 1
	}
	span *= 1.55 // margin for arrows

	size := float64(img.Bounds().Dx())
	return &canvas{
		img:   img,
		scale: size / span,
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		px:    size / 2,
		py:    size / 2,
		span:  span / 1.55,
	}
}

// point projects a global coordinate to pixels. Global +x (lateral-left)
// maps to screen-left, +y (superior) to screen-up.
func (c *canvas) point(v mathutil.Vec3) (float64, float64) {
	return c.px - (v[0]-c.cx)*c.scale, c.py - (v[1]-c.cy)*c.scale
}

func (c *canvas) dot(v mathutil.Vec3, col color.NRGBA, r float64) {
	x, y := c.point(v)
	c.fillCircle(x, y, r, col)
}

func (c *canvas) line(a, b mathutil.Vec3, col color.NRGBA, w float64) {
	ax, ay := c.point(a)
	bx, by := c.point(b)
	c.strokeLine(ax, ay, bx, by, w, col)
}

func (c *canvas) polyline(pts []mathutil.Vec3, col color.NRGBA, w float64) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], col, w)
	}
}

// arrow draws a world-space direction arrow starting at origin.
func (c *canvas) arrow(origin, dir mathutil.Vec3, col color.NRGBA, w float64) {
	tip := origin.Add(dir)
	ox, oy := c.point(origin)
	tx, ty := c.point(tip)

	c.strokeLine(ox, oy, tx, ty, w, col)

	// Arrow head: two strokes back from the tip at ±30° in screen space.
	dx, dy := tx-ox, ty-oy
	l := math.Hypot(dx, dy)
	if l < 1 {
		return
	}
	head := math.Min(l*0.35, c.scale*c.span*0.035)
	ang := math.Atan2(dy, dx)
	for _, da := range []float64{math.Pi - 0.5, math.Pi + 0.5} {
		hx := tx + head*math.Cos(ang+da)
		hy := ty + head*math.Sin(ang+da)
		c.strokeLine(tx, ty, hx, hy, w, col)
	}
}

// gfeArrow draws the gravity force effect direction for one arm. The
// effect vector lives in frame coordinates with the left arm's lateral
// mirrored; undo the mirror and unproject before drawing.
func (c *canvas) gfeArrow(hand mathutil.Vec3, frame anatomy.Frame, arm aff.ArmResult, refLen, stroke float64) {
	gfe := arm.Gravity.ForceEffect
	if gfe.IsZero() {
		return
	}
	gfe[anatomy.AxisLateral] *= arm.Side.LateralSign()
	dir := frame.Unproject(gfe).Normalize()

	// Display length proportional to magnitude, capped at the force arrow.
	scale := math.Min(arm.Gravity.Resultant/50, 1) * refLen
	c.arrow(hand, dir.Scale(scale), gfeColor, stroke*0.6)
}

func (c *canvas) strokeLine(ax, ay, bx, by, w float64, col color.NRGBA) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	steps := int(l/(w*0.35)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.fillCircle(ax+dx*t, ay+dy*t, w/2, col)
	}
}

func (c *canvas) fillCircle(cx, cy, r float64, col color.NRGBA) {
	if r < 0.5 {
		r = 0.5
	}
	x0, x1 := int(cx-r)-1, int(cx+r)+1
	y0, y1 := int(cy-r)-1, int(cy+r)+1
	b := c.img.Bounds()
	for y := y0; y <= y1; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			ddx := float64(x) + 0.5 - cx
			ddy := float64(y) + 0.5 - cy
			if ddx*ddx+ddy*ddy <= r*r {
				c.img.SetNRGBA(x, y, col)
			}
		}
	}
}
