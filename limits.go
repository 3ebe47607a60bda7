package hinge

import (
	"math"

	"github.com/akmonengine/hinge/joint"
	"github.com/go-gl/mathgl/mgl64"
)

// SphereLimitedPositionError clips a positional error against a sphere
// of the given radius: inside the sphere there is no violation, outside
// only the radial excess remains. A zero-length error has no direction
// to clip along and is returned unchanged.
func SphereLimitedPositionError(cx mgl64.Vec3, radius float64) mgl64.Vec3 {
	l := cx.Len()
	if l < radius {
		return mgl64.Vec3{}
	}
	if l > smallTolerance {
		dir := cx.Mul(1 / l)
		return cx.Sub(dir.Mul(radius))
	}
	return cx
}

// CylinderLimitedPositionError clips a positional error against an
// infinite cylinder of the given limit radius about axis. The in-plane
// part is clipped radially like the sphere case; the along-axis part is
// dropped entirely when that axis is free and kept in full otherwise.
func CylinderLimitedPositionError(cx mgl64.Vec3, axis mgl64.Vec3, limit float64, axisMotion joint.MotionType) mgl64.Vec3 {
	cxAxis := axis.Mul(cx.Dot(axis))
	cxPlane := cx.Sub(cxAxis)
	planeLen := cxPlane.Len()
	if axisMotion == joint.MotionFree {
		cxAxis = mgl64.Vec3{}
	}
	if planeLen < limit {
		cxPlane = mgl64.Vec3{}
	} else if planeLen > directionTolerance {
		dir := cxPlane.Mul(1 / planeLen)
		cxPlane = cxPlane.Sub(dir.Mul(limit))
	}
	return cxAxis.Add(cxPlane)
}

// LineLimitedPositionError clips the component of a positional error
// along a single axis: a free axis absorbs its whole component, a
// limited axis keeps only the signed excess beyond the limit.
func LineLimitedPositionError(cx mgl64.Vec3, axis mgl64.Vec3, limit float64, axisMotion joint.MotionType) mgl64.Vec3 {
	dist := cx.Dot(axis)
	switch {
	case axisMotion == joint.MotionFree || math.Abs(dist) < limit:
		return cx.Sub(axis.Mul(dist))
	case dist >= limit:
		return cx.Sub(axis.Mul(limit))
	default:
		return cx.Add(axis.Mul(limit))
	}
}

// LimitedPositionError returns the part of the raw positional error cx
// (child anchor minus parent anchor, world space) that violates the
// joint's hard linear limits. r0 is the parent constraint frame. The
// permitted in-shape component is cx minus the result.
//
// Only hard limits project position: soft-limited axes are resolved as
// spring forces elsewhere, so they count as free here.
func LimitedPositionError(settings joint.Settings, r0 mgl64.Quat, cx mgl64.Vec3) mgl64.Vec3 {
	var motion [3]joint.MotionType
	for i, m := range settings.LinearMotionTypes {
		if m == joint.MotionLimited && settings.SoftLinearLimitsEnabled {
			motion[i] = joint.MotionFree
		} else {
			motion[i] = m
		}
	}

	locked := 0
	limited := 0
	for _, m := range motion {
		switch m {
		case joint.MotionLocked:
			locked++
		case joint.MotionLimited:
			limited++
		}
	}

	switch {
	case locked == 3:
		// point constraint, the whole error is violation
		return cx
	case limited == 3:
		// spherical distance limit
		return SphereLimitedPositionError(cx, settings.LinearLimit)
	case motion[1] == joint.MotionLimited && motion[2] == joint.MotionLimited:
		// circular limit about the X axis
		axis := r0.Rotate(mgl64.Vec3{1, 0, 0})
		return CylinderLimitedPositionError(cx, axis, settings.LinearLimit, motion[0])
	case motion[0] == joint.MotionLimited && motion[2] == joint.MotionLimited:
		// circular limit about the Y axis
		axis := r0.Rotate(mgl64.Vec3{0, 1, 0})
		return CylinderLimitedPositionError(cx, axis, settings.LinearLimit, motion[1])
	case motion[0] == joint.MotionLimited && motion[1] == joint.MotionLimited:
		// circular limit about the Z axis
		axis := r0.Rotate(mgl64.Vec3{0, 0, 1})
		return CylinderLimitedPositionError(cx, axis, settings.LinearLimit, motion[2])
	default:
		// Line limits, clipped one unlocked axis at a time. The same
		// clipping would produce square and cube limits, but those
		// shapes cannot be authored through the joint settings; this is
		// a known limitation, kept deliberately.
		for i, axisLocal := range [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			if motion[i] == joint.MotionLocked {
				continue
			}
			axis := r0.Rotate(axisLocal)
			cx = LineLimitedPositionError(cx, axis, settings.LinearLimit, motion[i])
		}
		return cx
	}
}
