// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewCapacitors indicates the shape needs more capacitors than given.
var ErrTooFewCapacitors = errors.New("builder: too few capacitors")

// ErrCapacitorCount indicates the shape needs an exact capacitor count.
var ErrCapacitorCount = errors.New("builder: capacitor count does not fit shape")

// ErrUnknownShape indicates ByName got a name outside Shapes().
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrNilConstructor indicates Build got a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
