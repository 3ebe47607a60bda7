// Package hinge is the stateless math kernel of a position-based-dynamics
// joint constraint solver. It connects pairs of rigid bodies with
// configurable linear and angular degrees of freedom: each axis can be
// locked, limited or free, with optional soft-limit springs and drives.
//
// The kernel owns no state. Every function takes orientations, motion
// types and settings by value and returns vectors, angles or scalars, so
// it is safe to call concurrently from any number of solver workers.
// The iterative solve loop, body storage and joint authoring all live in
// the caller.
//
// The swing/twist convention is fixed by the joint package: twist about
// the joint's local X axis, applied first, so that the relative rotation
// factors as r01 = swing * twist.
//
// References:
//   - Müller et al.: "Position Based Dynamics" (2007)
//   - Müller et al.: "Detailed Rigid Body Simulation with Extended
//     Position Based Dynamics" (2020)
//   - Dobrowolski: "Swing-twist decomposition in Clifford algebra" (2015)
package hinge
