package main

import (
	"fmt"

	"github.com/akmonengine/hinge"
	"github.com/akmonengine/hinge/joint"
	"github.com/go-gl/mathgl/mgl64"
)

// Walks one joint through the whole kernel: a child body hanging off a
// parent with a twisted, swung orientation and an out-of-limit anchor
// offset. This is the data an iterative PBD solver would query every
// iteration; applying the corrections is the solver's job, not shown
// here.
func main() {
	parent := mgl64.QuatRotate(0.2, mgl64.Vec3{0, 0, 1})
	child := parent.Mul(
		mgl64.QuatRotate(0.5, joint.Swing1Axis()).
			Mul(mgl64.QuatRotate(0.9, joint.TwistAxis())))

	fmt.Println("=== Angular errors ===")
	twist, swing1, swing2 := hinge.SwingTwistAngles(parent, child)
	fmt.Printf("twist: %.3f rad, swing1: %.3f rad, swing2: %.3f rad\n", twist, swing1, swing2)

	axis, angle := hinge.TwistAxisAngle(parent, child)
	fmt.Printf("twist axis (world): %v, angle: %.3f rad\n", axis, angle)

	coneAxis, coneAngle := hinge.ConeAxisAngleLocal(parent, child, 1e-6)
	fmt.Printf("cone axis (local): %v, angle: %.3f rad\n", coneAxis, coneAngle)

	swingAxis, swingAngle := hinge.SwingAxisAngle(parent, child, 1e-6, joint.Swing1)
	fmt.Printf("swing1 axis (world): %v, angle: %.3f rad\n", swingAxis, swingAngle)

	lockedAxis0, lockedAxis1, lockedAxis2 := hinge.LockedAxes(parent, child)
	fmt.Printf("locked correction basis: %v %v %v\n", lockedAxis0, lockedAxis1, lockedAxis2)

	fmt.Println("=== Linear limit ===")
	settings := joint.Settings{
		LinearMotionTypes: [3]joint.MotionType{
			joint.MotionFree, joint.MotionLimited, joint.MotionLimited,
		},
		LinearLimit: 0.1,
		Stiffness:   1,
	}
	anchorError := mgl64.Vec3{0.5, 0.3, -0.2}
	violation := hinge.LimitedPositionError(settings, parent, anchorError)
	fmt.Printf("anchor error: %v -> violation outside cylinder: %v\n", anchorError, violation)

	fmt.Println("=== Effective coefficients ===")
	solver := joint.SolverSettings{
		Stiffness:          0, // defer to the joint
		MinParentMassRatio: 0.5,
		MaxInertiaRatio:    5,
	}
	fmt.Printf("linear stiffness: %v\n", joint.LinearStiffness(solver, settings))
	fmt.Printf("swing drive stiffness (drive disabled): %v\n",
		joint.AngularSwingDriveStiffness(solver, settings))
	fmt.Printf("angular position correction (linear axes not locked): %v\n",
		joint.AngularPositionCorrection(solver, settings))

	fmt.Println("=== Mass conditioning ===")
	// light parent (1 kg) holding a heavy child (40 kg) with a very
	// anisotropic parent inertia
	invMParent, invMChild, invIParent, invIChild := hinge.ConditionInverseMassAndInertia(
		1, 1.0/40,
		mgl64.Vec3{1, 1, 1.0 / 30}, mgl64.Vec3{1.0 / 40, 1.0 / 40, 1.0 / 40},
		solver.MinParentMassRatio, solver.MaxInertiaRatio)
	fmt.Printf("parent mass: %.2f kg (was 1)\n", 1/invMParent)
	fmt.Printf("child mass: %.2f kg (unchanged)\n", 1/invMChild)
	fmt.Printf("parent inertia: %v\n", reciprocal(invIParent))
	fmt.Printf("child inertia: %v\n", reciprocal(invIChild))
}

func reciprocal(v mgl64.Vec3) mgl64.Vec3 {
	if v == (mgl64.Vec3{}) {
		return v
	}
	return mgl64.Vec3{1 / v[0], 1 / v[1], 1 / v[2]}
}
