package match

// Candidates derives the full ordered candidate list for a request host and
// path. It is the composition of HostVariants, PathVariants, and
// ComposeCandidates.
func Candidates(host, path string) []string {
	return ComposeCandidates(HostVariants(host), PathVariants(path))
}

// ComposeCandidates combines host and path variants into an ordered,
// deduplicated list of store-entry candidates.
//
// Host specificity outranks path specificity: every path variant of a host
// variant is emitted before the next host variant is considered. An empty
// path variant composes to the host variant alone. Duplicates keep their
// first position.
func ComposeCandidates(hosts, paths []string) []string {
	candidates := make([]string, 0, len(hosts)*len(paths))
	seen := make(map[string]struct{}, len(hosts)*len(paths))

	for _, h := range hosts {
		for _, p := range paths {
			c := h
			if p != "" {
				c = h + "/" + p
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			candidates = append(candidates, c)
		}
	}
	return candidates
}
