package patch

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Clamp bounds v to [lo, hi].
func Clamp[T ~int | ~int32 | ~int64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
