package common

// GroupBy partitions s by key. Keys are returned in order of first appearance and
// elements keep their relative order inside each group.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) ([]K, map[K]S) {
	var keys []K

	groups := make(map[K]S)

	for _, e := range s {
		k := key(e)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}

		groups[k] = append(groups[k], e)
	}

	return keys, groups
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
