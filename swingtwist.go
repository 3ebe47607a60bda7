package hinge

import (
	"math"

	"github.com/akmonengine/hinge/joint"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// smallTolerance guards normalizations of near-zero quantities
	smallTolerance = 1e-8
	// directionTolerance is the looser threshold used when a unit
	// direction is required from a cross product
	directionTolerance = 1e-4
)

// DecomposeSwingTwist factors the rotation of body 1 relative to body 0
// into a twist about the local twist axis (X) and the remaining swing,
// such that r01 = swing * twist (twist applied first).
//
// The outputs are only as normalized as the inputs; the angle
// extractors normalize again before use.
func DecomposeSwingTwist(r0, r1 mgl64.Quat) (swing, twist mgl64.Quat) {
	r01 := r0.Inverse().Mul(r1)
	return splitTwist(r01)
}

// splitTwist projects r01 onto the twist axis. A 180° rotation about an
// axis perpendicular to X projects to zero, in which case the twist is
// the identity and the whole rotation is swing.
func splitTwist(r01 mgl64.Quat) (swing, twist mgl64.Quat) {
	twist = mgl64.Quat{W: r01.W, V: mgl64.Vec3{r01.V[0], 0, 0}}
	if twist.Len() < smallTolerance {
		twist = mgl64.QuatIdent()
	} else {
		twist = twist.Normalize()
	}
	swing = r01.Mul(twist.Inverse())
	return swing, twist
}

// SwingTwistAngles returns the decomposed constraint angles between two
// body frames. The twist angle is signed and lies in (-π, π]. The swing
// angles use the half-angle identity 4·atan2(q, 1+w), which stays
// continuous and sign-correct as the swing scalar approaches its bounds.
func SwingTwistAngles(r0, r1 mgl64.Quat) (twistAngle, swing1Angle, swing2Angle float64) {
	swing, twist := DecomposeSwingTwist(r0, r1)
	twistAngle = TwistAngle(twist)
	swing1Angle = 4 * math.Atan2(swing.Z(), 1+swing.W)
	swing2Angle = 4 * math.Atan2(swing.Y(), 1+swing.W)
	return twistAngle, swing1Angle, swing2Angle
}

// TwistAngle extracts the signed rotation angle of a twist quaternion,
// in (-π, π]. The sign follows the twist axis component, which keeps the
// angle continuous across the ±π wrap instead of jumping.
func TwistAngle(twist mgl64.Quat) float64 {
	t := twist.Normalize()
	// round-off can push a normalized scalar fractionally outside [-1, 1]
	w := mgl64.Clamp(t.W, -1, 1)
	angle := 2 * math.Acos(w)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	if t.X() < 0 {
		angle = -angle
	}
	return angle
}

// TwistAxisAngle returns the twist constraint axis in world space (the
// child body's twist axis) and the signed twist angle about it.
func TwistAxisAngle(r0, r1 mgl64.Quat) (axis mgl64.Vec3, angle float64) {
	_, twist := DecomposeSwingTwist(r0, r1)
	axis = r1.Rotate(joint.TwistAxis())
	angle = TwistAngle(twist)
	return axis, angle
}

// ConeAxisAngleLocal returns the swing of body 1 relative to body 0 as a
// single local axis and angle. Below angleTolerance the rotation axis is
// undefined and the Swing1 axis is returned instead; angles past π are
// remapped into the negative range.
func ConeAxisAngleLocal(r0, r1 mgl64.Quat, angleTolerance float64) (axisLocal mgl64.Vec3, angle float64) {
	swing, _ := DecomposeSwingTwist(r0, r1)
	axisLocal, angle = axisAngleSafe(swing, joint.Swing1Axis(), angleTolerance)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return axisLocal, angle
}

// axisAngleSafe converts a quaternion to axis-angle form, falling back
// to the provided axis when the rotation is too small to define one.
func axisAngleSafe(q mgl64.Quat, fallback mgl64.Vec3, angleTolerance float64) (mgl64.Vec3, float64) {
	n := q.Normalize()
	angle := 2 * math.Acos(mgl64.Clamp(n.W, -1, 1))
	if math.Abs(angle) < angleTolerance {
		return fallback, angle
	}
	axis, ok := normalizeSafe(n.V, smallTolerance)
	if !ok {
		return fallback, angle
	}
	return axis, angle
}

// normalizeSafe reports whether v carries a usable direction. Vectors
// shorter than tolerance are returned unchanged with ok == false.
func normalizeSafe(v mgl64.Vec3, tolerance float64) (unit mgl64.Vec3, ok bool) {
	l := v.Len()
	if l < tolerance {
		return v, false
	}
	return v.Mul(1 / l), true
}
