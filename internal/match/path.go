package match

import "strings"

// PathVariants returns the ordered list of path prefixes to try for the
// given request path, longest first, always ending in the empty string
// (which stands for a host-only entry).
//
// A trailing ".git" suffix and a leading "/" are stripped before splitting.
func PathVariants(path string) []string {
	p := strings.TrimSuffix(path, ".git")
	p = strings.TrimPrefix(p, "/")

	if p == "" {
		return []string{""}
	}

	segments := strings.Split(p, "/")
	variants := make([]string, 0, len(segments)+1)
	for k := len(segments); k >= 1; k-- {
		if v := strings.Join(segments[:k], "/"); v != "" {
			variants = append(variants, v)
		}
	}
	return append(variants, "")
}
