package stats

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

// Weights is a per-sample weight vector, reserved for weighted variants of
// the statistics in this package. No current function consumes it.
type Weights[T Float | Integer] []T
