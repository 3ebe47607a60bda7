// Package joint holds the joint configuration value types, the fixed
// swing/twist axis convention, and the resolution of effective solver
// coefficients from the global and per-joint settings tiers.
package joint

import "github.com/go-gl/mathgl/mgl64"

// MotionType describes the permitted motion along or about a single axis.
type MotionType int

const (
	// MotionFree axes are unconstrained and transmit no positional error
	MotionFree MotionType = iota

	// MotionLimited axes move freely inside the limit distance and
	// transmit only the excess beyond it
	MotionLimited

	// MotionLocked axes transmit the full positional error
	MotionLocked
)

// ForceMode selects how drive and soft-limit corrections are scaled.
type ForceMode int

const (
	// ForceModeForce applies corrections scaled by mass
	ForceModeForce ForceMode = iota

	// ForceModeAcceleration applies corrections independent of mass
	ForceModeAcceleration
)

// The swing/twist convention is fixed: twist is the rotation about the
// joint's local X axis, Swing1 is about local Z and Swing2 about local Y.
// All angular extractors assume this convention; change it here, not at
// the call sites.

// TwistAxis returns the local twist axis (X).
func TwistAxis() mgl64.Vec3 { return mgl64.Vec3{1, 0, 0} }

// Swing1Axis returns the local Swing1 axis (Z).
func Swing1Axis() mgl64.Vec3 { return mgl64.Vec3{0, 0, 1} }

// Swing2Axis returns the local Swing2 axis (Y).
func Swing2Axis() mgl64.Vec3 { return mgl64.Vec3{0, 1, 0} }

// SwingAxis selects one of the two swing constraint axes.
type SwingAxis int

const (
	Swing1 SwingAxis = iota
	Swing2
)

// Index returns the quaternion/vector component index of the swing axis
// (2 for Swing1/Z, 1 for Swing2/Y).
func (a SwingAxis) Index() int {
	if a == Swing1 {
		return 2
	}
	return 1
}

// Axis returns the local axis of the swing constraint itself.
func (a SwingAxis) Axis() mgl64.Vec3 {
	if a == Swing1 {
		return Swing1Axis()
	}
	return Swing2Axis()
}

// OtherAxis returns the local axis of the opposite swing constraint.
func (a SwingAxis) OtherAxis() mgl64.Vec3 {
	if a == Swing1 {
		return Swing2Axis()
	}
	return Swing1Axis()
}

// Settings holds the per-joint configuration. It is authored by the
// caller and read-only for the kernel; every field is a plain value.
type Settings struct {
	// LinearMotionTypes configures each local linear axis independently
	LinearMotionTypes [3]MotionType
	// LinearLimit is the limit distance shared by all limited linear axes
	LinearLimit float64

	Stiffness float64

	SoftLinearLimitsEnabled bool
	SoftLinearStiffness     float64
	SoftLinearDamping       float64

	SoftTwistLimitsEnabled bool
	SoftTwistStiffness     float64
	SoftTwistDamping       float64

	SoftSwingLimitsEnabled bool
	SoftSwingStiffness     float64
	SoftSwingDamping       float64

	LinearPositionDriveEnabled bool
	LinearVelocityDriveEnabled bool
	LinearDriveStiffness       float64
	LinearDriveDamping         float64

	AngularTwistPositionDriveEnabled bool
	AngularTwistVelocityDriveEnabled bool
	AngularSwingPositionDriveEnabled bool
	AngularSwingVelocityDriveEnabled bool
	AngularSLerpPositionDriveEnabled bool
	AngularSLerpVelocityDriveEnabled bool
	AngularDriveStiffness            float64
	AngularDriveDamping              float64

	LinearProjection  float64
	AngularProjection float64

	LinearSoftForceMode   ForceMode
	AngularSoftForceMode  ForceMode
	AngularDriveForceMode ForceMode
}

// SolverSettings holds the global override tier. Any positive coefficient
// here replaces the joint's own value for every joint in the solve; a
// non-positive value defers to the joint.
type SolverSettings struct {
	Stiffness float64

	SoftLinearStiffness float64
	SoftLinearDamping   float64
	SoftTwistStiffness  float64
	SoftTwistDamping    float64
	SoftSwingStiffness  float64
	SoftSwingDamping    float64

	LinearDriveStiffness  float64
	LinearDriveDamping    float64
	AngularDriveStiffness float64
	AngularDriveDamping   float64

	LinearProjection  float64
	AngularProjection float64

	// AngularConstraintPositionCorrection hardens fully locked angular
	// constraints; it is only safe when the joint has no linear freedom
	AngularConstraintPositionCorrection float64

	// MinParentMassRatio and MaxInertiaRatio feed the mass/inertia
	// conditioning applied to each connected body pair
	MinParentMassRatio float64
	MaxInertiaRatio    float64
}
