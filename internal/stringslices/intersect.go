package stringslices

// Intersect returns the elements of b that also appear in a, in b's
// order. Matching is case-sensitive.
func Intersect(a, b []string) []string {
	m := make(map[string]struct{}, len(a))
	for _, s := range a {
		m[s] = struct{}{}
	}

	var res []string
	for _, s := range b {
		if _, ok := m[s]; ok {
			res = append(res, s)
		}
	}

	return res
}
