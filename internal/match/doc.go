// Package match implements the candidate search over the password store.
//
// A credential request carries a host and a path. Both are shortened into
// ordered variant lists, composed into store-entry candidates, and probed
// against the store until one exists.
//
// # Host Shortening
//
// Hosts are shortened one leading label at a time, never below the last two
// dot-separated labels (the primary domain):
//
//	www.github.com -> [www.github.com, github.com]
//	a.b.c.d        -> [a.b.c.d, b.c.d, c.d]
//
// IP literals and dotless hosts are never shortened. Variants carrying a
// port are duplicated with '#' in place of ':' so entries can use either
// notation, since ':' is awkward in some store filesystems.
//
// # Path Shortening
//
// Paths lose a trailing .git suffix and are then shortened one trailing
// segment at a time, down to the empty path (a host-only entry):
//
//	/cassava/repo.git -> [cassava/repo, cassava, ""]
//
// # Composition
//
// Host variants take priority over path variants: every path variant of a
// host is exhausted before the next, less specific host is tried. The
// composed list is deduplicated preserving first occurrence.
//
// The package is pure string manipulation. Probing goes through the
// EntryChecker interface so the search is testable without a real store.
package match
