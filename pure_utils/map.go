package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f.
// A nil src gives an empty, non-nil slice.
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}
