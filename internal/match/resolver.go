package match

// EntryChecker reports whether a named entry exists in the secret store.
// Implementations must be free of observable side effects.
type EntryChecker interface {
	Exists(name string) bool
}

// EntryName builds the fully-qualified store-entry name for a candidate.
// An empty prefix or suffix contributes nothing.
func EntryName(prefix, candidate, suffix string) string {
	if prefix == "" {
		return candidate + suffix
	}
	return prefix + "/" + candidate + suffix
}

// ResolveEntry probes the store for each candidate in order and returns the
// first one whose entry exists. The boolean is false when no candidate
// matched, which is a normal outcome and not an error.
//
// Probing stops at the first match; candidates are never reordered.
func ResolveEntry(candidates []string, prefix, suffix string, store EntryChecker) (string, bool) {
	for _, c := range candidates {
		if store.Exists(EntryName(prefix, c, suffix)) {
			return c, true
		}
	}
	return "", false
}
