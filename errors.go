package azimint

import "errors"

// ErrShapeMismatch is wrapped into errors reporting that two inputs that
// must have matching length (pos and weights, or a correction array and
// the pixel count) do not.
var ErrShapeMismatch = errors.New("azimint: shape mismatch")

// ErrInvalidParameter is wrapped into errors reporting an out-of-domain
// scalar parameter, such as a non-positive bin count.
var ErrInvalidParameter = errors.New("azimint: invalid parameter")
