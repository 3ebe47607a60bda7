package hinge

import (
	"math"

	"github.com/akmonengine/hinge/joint"
	"github.com/go-gl/mathgl/mgl64"
)

// LockedSwingAxisAngle measures the error of a single swing constraint
// when the joint is near a degenerate twist configuration. Unlike
// DualConeSwingAxisAngle it returns the raw cross product, whose length
// is sin(angle), and an "angle" that is actually sin(angle). That skips
// a normalization and an asin, and stays well defined where the true
// axis-angle form degenerates.
func LockedSwingAxisAngle(r0, r1 mgl64.Quat, swingAxis joint.SwingAxis) (axis mgl64.Vec3, angle float64) {
	twist1 := r1.Rotate(joint.TwistAxis())
	swing0 := r0.Rotate(swingAxis.OtherAxis())
	axis = swing0.Cross(twist1)
	angle = -swing0.Dot(twist1)
	return axis, angle
}

// DualConeSwingAxisAngle measures the error of a single swing constraint
// as a true normalized axis and angle. When the parent swing axis and
// the child twist axis are near parallel the cross product carries no
// direction: the angle is reported as zero and the raw cross product is
// returned as-is.
func DualConeSwingAxisAngle(r0, r1 mgl64.Quat, swingAxis joint.SwingAxis) (axis mgl64.Vec3, angle float64) {
	twist1 := r1.Rotate(joint.TwistAxis())
	swing0 := r0.Rotate(swingAxis.OtherAxis())
	axis = swing0.Cross(twist1)
	if unit, ok := normalizeSafe(axis, directionTolerance); ok {
		axis = unit
		angle = math.Asin(mgl64.Clamp(-swing0.Dot(twist1), -1, 1))
	}
	return axis, angle
}

// SwingAxisAngle measures the error of a single swing constraint from
// the swing quaternion itself, using the half-angle identity on the
// selected component. The axis is the parent body's swing axis in world
// space.
func SwingAxisAngle(r0, r1 mgl64.Quat, angleTolerance float64, swingAxis joint.SwingAxis) (axis mgl64.Vec3, angle float64) {
	swing, _ := DecomposeSwingTwist(r0, r1)
	component := swing.Y()
	if swingAxis.Index() == 2 {
		component = swing.Z()
	}
	angle = 4 * math.Atan2(component, 1+swing.W)
	axis = r0.Rotate(swingAxis.Axis())
	return axis, angle
}

// LockedAxes returns the three instantaneous world-space correction axes
// of a fully locked angular constraint, computed in closed form from the
// two orientations without building the relative rotation.
//
// At 180° relative swing the closed form collapses to a zero basis; a
// small epsilon on each axis's own diagonal component keeps the basis
// usable.
func LockedAxes(r0, r1 mgl64.Quat) (axis0, axis1, axis2 mgl64.Vec3) {
	w0, w1 := r0.W, r1.W
	v0, v1 := r0.V, r1.V

	c := v1.Mul(w0).Add(v0.Mul(w1))
	d0 := w0 * w1
	d1 := v0.Dot(v1)
	d := d0 - d1

	axis0 = v0.Mul(v1[0]).Add(v1.Mul(v0[0])).Add(mgl64.Vec3{d, c[2], -c[1]}).Mul(0.5)
	axis1 = v0.Mul(v1[1]).Add(v1.Mul(v0[1])).Add(mgl64.Vec3{-c[2], d, c[0]}).Mul(0.5)
	axis2 = v0.Mul(v1[2]).Add(v1.Mul(v0[2])).Add(mgl64.Vec3{c[1], -c[0], d}).Mul(0.5)

	if math.Abs(d0+d1) < smallTolerance {
		axis0[0] += smallTolerance
		axis1[1] += smallTolerance
		axis2[2] += smallTolerance
	}
	return axis0, axis1, axis2
}
