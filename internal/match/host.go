package match

import (
	"regexp"
	"strings"
)

// ipLiteralPattern matches hosts made of digits and dots only, with an
// optional trailing port. Such hosts have no meaningful label hierarchy.
var ipLiteralPattern = regexp.MustCompile(`^[0-9.]+(:[0-9]+)?$`)

// portSuffixPattern matches a trailing ":<port>" on a host variant.
var portSuffixPattern = regexp.MustCompile(`:[0-9]+$`)

// HostVariants returns the ordered list of host names to try for the given
// request host, most specific first.
//
// Dotted hosts are shortened one leading label at a time down to the primary
// domain (the last two labels); the final label alone is never emitted. IP
// literals and dotless hosts yield themselves only. A port, if present,
// stays attached to the last label throughout.
//
// Every variant ending in ":<port>" additionally yields a "#<port>" form,
// appended after all colon-form variants in the same relative order.
func HostVariants(host string) []string {
	var variants []string

	if ipLiteralPattern.MatchString(host) || !strings.Contains(host, ".") {
		variants = []string{host}
	} else {
		labels := strings.Split(host, ".")
		for k := 0; k <= len(labels)-2; k++ {
			variants = append(variants, strings.Join(labels[k:], "."))
		}
	}

	// Second pass over a fixed snapshot: derive '#' port forms without
	// mutating the list being iterated.
	for _, v := range variants[:len(variants):len(variants)] {
		if portSuffixPattern.MatchString(v) {
			i := strings.LastIndex(v, ":")
			variants = append(variants, v[:i]+"#"+v[i+1:])
		}
	}

	return variants
}
