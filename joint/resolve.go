package joint

// Every effective coefficient follows the same two-tier precedence: a
// positive solver-level value overrides the joint's own value, anything
// else (zero or negative) defers to the joint. Drive coefficients are
// additionally gated on the joint's enable flag for that drive sub-type.

func override(global, local float64) float64 {
	if global > 0 {
		return global
	}
	return local
}

func overrideIf(enabled bool, global, local float64) float64 {
	if !enabled {
		return 0
	}
	return override(global, local)
}

// LinearStiffness returns the effective stiffness for hard linear constraints.
func LinearStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.Stiffness, settings.Stiffness)
}

// TwistStiffness returns the effective stiffness for hard twist constraints.
func TwistStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.Stiffness, settings.Stiffness)
}

// SwingStiffness returns the effective stiffness for hard swing constraints.
func SwingStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.Stiffness, settings.Stiffness)
}

// SoftLinearStiffness returns the effective spring stiffness for soft linear limits.
func SoftLinearStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftLinearStiffness, settings.SoftLinearStiffness)
}

// SoftLinearDamping returns the effective spring damping for soft linear limits.
func SoftLinearDamping(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftLinearDamping, settings.SoftLinearDamping)
}

// SoftTwistStiffness returns the effective spring stiffness for soft twist limits.
func SoftTwistStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftTwistStiffness, settings.SoftTwistStiffness)
}

// SoftTwistDamping returns the effective spring damping for soft twist limits.
func SoftTwistDamping(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftTwistDamping, settings.SoftTwistDamping)
}

// SoftSwingStiffness returns the effective spring stiffness for soft swing limits.
func SoftSwingStiffness(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftSwingStiffness, settings.SoftSwingStiffness)
}

// SoftSwingDamping returns the effective spring damping for soft swing limits.
func SoftSwingDamping(solver SolverSettings, settings Settings) float64 {
	return override(solver.SoftSwingDamping, settings.SoftSwingDamping)
}

// LinearDriveStiffness returns the position-drive stiffness for the
// linear drive, or 0 when the joint has no linear position drive.
func LinearDriveStiffness(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.LinearPositionDriveEnabled,
		solver.LinearDriveStiffness, settings.LinearDriveStiffness)
}

// LinearDriveDamping returns the velocity-drive damping for the linear
// drive, or 0 when the joint has no linear velocity drive.
func LinearDriveDamping(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.LinearVelocityDriveEnabled,
		solver.LinearDriveDamping, settings.LinearDriveDamping)
}

// AngularTwistDriveStiffness returns the position-drive stiffness for
// the twist drive, or 0 when disabled on the joint.
func AngularTwistDriveStiffness(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularTwistPositionDriveEnabled,
		solver.AngularDriveStiffness, settings.AngularDriveStiffness)
}

// AngularTwistDriveDamping returns the velocity-drive damping for the
// twist drive, or 0 when disabled on the joint.
func AngularTwistDriveDamping(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularTwistVelocityDriveEnabled,
		solver.AngularDriveDamping, settings.AngularDriveDamping)
}

// AngularSwingDriveStiffness returns the position-drive stiffness for
// the swing drive, or 0 when disabled on the joint.
func AngularSwingDriveStiffness(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularSwingPositionDriveEnabled,
		solver.AngularDriveStiffness, settings.AngularDriveStiffness)
}

// AngularSwingDriveDamping returns the velocity-drive damping for the
// swing drive, or 0 when disabled on the joint.
func AngularSwingDriveDamping(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularSwingVelocityDriveEnabled,
		solver.AngularDriveDamping, settings.AngularDriveDamping)
}

// AngularSLerpDriveStiffness returns the position-drive stiffness for
// the slerp drive, or 0 when disabled on the joint.
func AngularSLerpDriveStiffness(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularSLerpPositionDriveEnabled,
		solver.AngularDriveStiffness, settings.AngularDriveStiffness)
}

// AngularSLerpDriveDamping returns the velocity-drive damping for the
// slerp drive, or 0 when disabled on the joint.
func AngularSLerpDriveDamping(solver SolverSettings, settings Settings) float64 {
	return overrideIf(settings.AngularSLerpVelocityDriveEnabled,
		solver.AngularDriveDamping, settings.AngularDriveDamping)
}

// LinearProjection returns the effective linear projection amount.
func LinearProjection(solver SolverSettings, settings Settings) float64 {
	return override(solver.LinearProjection, settings.LinearProjection)
}

// AngularProjection returns the effective angular projection amount.
func AngularProjection(solver SolverSettings, settings Settings) float64 {
	return override(solver.AngularProjection, settings.AngularProjection)
}

// LinearSoftAccelerationMode reports whether soft linear limits apply
// mass-independent corrections.
func LinearSoftAccelerationMode(solver SolverSettings, settings Settings) bool {
	return settings.LinearSoftForceMode == ForceModeAcceleration
}

// AngularSoftAccelerationMode reports whether soft angular limits apply
// mass-independent corrections.
func AngularSoftAccelerationMode(solver SolverSettings, settings Settings) bool {
	return settings.AngularSoftForceMode == ForceModeAcceleration
}

// DriveAccelerationMode reports whether angular drives apply
// mass-independent corrections.
func DriveAccelerationMode(solver SolverSettings, settings Settings) bool {
	return settings.AngularDriveForceMode == ForceModeAcceleration
}

// AngularPositionCorrection returns the angular hardness boost for
// fully locked angular constraints. The boost destabilizes joints that
// also have translational freedom, so it is zero unless all three
// linear axes are locked.
func AngularPositionCorrection(solver SolverSettings, settings Settings) float64 {
	allLocked := settings.LinearMotionTypes[0] == MotionLocked &&
		settings.LinearMotionTypes[1] == MotionLocked &&
		settings.LinearMotionTypes[2] == MotionLocked
	if allLocked {
		return solver.AngularConstraintPositionCorrection
	}
	return 0
}
