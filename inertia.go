package hinge

import "github.com/go-gl/mathgl/mgl64"

// Large mass and inertia ratios between two connected bodies make the
// iterative solve diverge, so the joint solver conditions each pair
// before use: first each body's own inertia anisotropy is bounded, then
// the parent is kept from being much lighter than the child.

// ConditionInertia bounds the ratio between the largest and smallest
// principal inertia component by maxRatio. When the ratio is exceeded,
// all three components are remapped linearly into [max/maxRatio, max],
// preserving each component's relative position between min and max. A
// non-positive maxRatio or a non-positive minimum component disables
// conditioning.
func ConditionInertia(inertia mgl64.Vec3, maxRatio float64) mgl64.Vec3 {
	iMin := minComponent(inertia)
	iMax := maxComponent(inertia)
	if maxRatio > 0 && iMin > 0 {
		ratio := iMax / iMin
		if ratio > maxRatio {
			floor := iMax / maxRatio
			scale := (iMax - floor) / (iMax - iMin)
			return mgl64.Vec3{
				floor + (inertia[0]-iMin)*scale,
				floor + (inertia[1]-iMin)*scale,
				floor + (inertia[2]-iMin)*scale,
			}
		}
	}
	return inertia
}

// ConditionParentInertia scales the parent inertia up uniformly so that
// the ratio of largest parent component to largest child component is
// at least minRatio.
func ConditionParentInertia(parent, child mgl64.Vec3, minRatio float64) mgl64.Vec3 {
	if minRatio > 0 {
		parentMax := maxComponent(parent)
		childMax := maxComponent(child)
		if parentMax > 0 && childMax > 0 {
			ratio := parentMax / childMax
			if ratio < minRatio {
				return parent.Mul(minRatio / ratio)
			}
		}
	}
	return parent
}

// ConditionParentMass raises the parent mass so that the parent/child
// mass ratio is at least minRatio.
func ConditionParentMass(parentMass, childMass, minRatio float64) float64 {
	if minRatio > 0 && parentMass > 0 && childMass > 0 {
		ratio := parentMass / childMass
		if ratio < minRatio {
			return parentMass * (minRatio / ratio)
		}
	}
	return parentMass
}

// ConditionInverseMassAndInertia conditions the inverse mass and inverse
// principal inertia of a connected parent/child pair for solver
// stability. Each dynamic body's inertia anisotropy is bounded by
// maxInertiaRatio first, then the parent mass and inertia are floored
// against the child by minParentMassRatio — in that order, so the cross
// check runs on already-bounded inertias. Bodies with non-positive
// inverse mass are fixed or kinematic and pass through unchanged.
func ConditionInverseMassAndInertia(
	invMassParent, invMassChild float64,
	invInertiaParent, invInertiaChild mgl64.Vec3,
	minParentMassRatio, maxInertiaRatio float64,
) (float64, float64, mgl64.Vec3, mgl64.Vec3) {
	var massParent, massChild float64
	var inertiaParent, inertiaChild mgl64.Vec3

	if invMassParent > 0 {
		massParent = 1 / invMassParent
		inertiaParent = ConditionInertia(reciprocal(invInertiaParent), maxInertiaRatio)
	}
	if invMassChild > 0 {
		massChild = 1 / invMassChild
		inertiaChild = ConditionInertia(reciprocal(invInertiaChild), maxInertiaRatio)
	}

	if invMassParent > 0 && invMassChild > 0 {
		massParent = ConditionParentMass(massParent, massChild, minParentMassRatio)
		inertiaParent = ConditionParentInertia(inertiaParent, inertiaChild, minParentMassRatio)
	}

	if invMassParent > 0 {
		invMassParent = 1 / massParent
		invInertiaParent = reciprocal(inertiaParent)
	}
	if invMassChild > 0 {
		invMassChild = 1 / massChild
		invInertiaChild = reciprocal(inertiaChild)
	}
	return invMassParent, invMassChild, invInertiaParent, invInertiaChild
}

func reciprocal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{1 / v[0], 1 / v[1], 1 / v[2]}
}

func minComponent(v mgl64.Vec3) float64 {
	return min(v[0], v[1], v[2])
}

func maxComponent(v mgl64.Vec3) float64 {
	return max(v[0], v[1], v[2])
}
