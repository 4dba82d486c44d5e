// SPDX-License-Identifier: MIT

// Package heuristic samples random capacitor networks, including bridges
// and other non series-parallel shapes, and ranks them by how closely
// their equivalent capacitance matches a target.
//
// Every network is evaluated by package laplacian, so any topology is
// allowed. The whole run draws from one math/rand stream seeded from
// Options.Seed, which makes Search reproducible: the same capacitors,
// target and Options always return the same ordered Solutions.
//
// A network always carries every capacitor exactly once. Internal nodes
// that end up without a capacitor float and are ignored by the solver;
// a network whose terminals end up apart scores C_eq = 0 and is marked
// Disconnected rather than redrawn.
//
// Errors:
//
//	network.ErrNoCapacitors, network.ErrNonPositiveValue,
//	network.ErrNonFiniteValue, ErrBadIterations, ErrBadInternalNodes,
//	ErrBadMaxResults, ErrBadTolerance, ErrBadProgressEvery.
package heuristic
