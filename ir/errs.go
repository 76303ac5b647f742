package ir

import "errors"

// ErrConsumed is returned by Take when a node has already been
// rendered. Trees are consumed by rendering and cannot be reused.
var ErrConsumed = errors.New("node already rendered")
