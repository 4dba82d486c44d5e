// SPDX-License-Identifier: MIT

// Package builder lays a capacitor list out in standard named shapes.
//
// Every Constructor places each capacitor exactly once, in input order,
// on a fresh network.Network with terminals A and B:
//
//	Chain     A ─C1─ n1 ─C2─ … ─Cn─ B          all in series
//	Bank      A ═C1═…═Cn═ B                     all in parallel
//	Ladder    series arm, shunt to B, series arm, shunt to B, …
//	Bridge    Wheatstone bridge over exactly five capacitors
//	Complete  every node pair joined once; needs n(n-1)/2 capacitors
//
// Shapes are deterministic: node numbering and edge order depend only on
// the length of the input. Use ByName to resolve a shape from user input.
//
// Errors:
//
//	ErrTooFewCapacitors  the shape needs more capacitors.
//	ErrCapacitorCount    the shape needs an exact count (Bridge, Complete).
//	ErrUnknownShape      ByName got an unknown name.
//	ErrNilConstructor    Build got a nil Constructor.
//
// Invalid capacitor values surface the network sentinels
// (network.ErrNoCapacitors, network.ErrNonPositiveValue, …).
package builder
