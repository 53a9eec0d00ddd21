package match

import (
	"reflect"
	"testing"
)

func TestCandidates_HostAndPath(t *testing.T) {
	// Host specificity outranks path specificity: all paths of a host are
	// exhausted before the next host variant.
	got := Candidates("www.github.com", "/cassava/git-credential-pass")
	want := []string{
		"www.github.com/cassava/git-credential-pass",
		"www.github.com/cassava",
		"www.github.com",
		"github.com/cassava/git-credential-pass",
		"github.com/cassava",
		"github.com",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestCandidates_HostOnly(t *testing.T) {
	got := Candidates("github.com", "")
	want := []string{"github.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestComposeCandidates_DedupKeepsFirstPosition(t *testing.T) {
	// (a, "b") and (a/b, "") both compose to "a/b"; the earlier pair wins.
	got := ComposeCandidates([]string{"a", "a/b"}, []string{"b", ""})
	want := []string{"a/b", "a", "a/b/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestComposeCandidates_EmptyPathComposesHostAlone(t *testing.T) {
	got := ComposeCandidates([]string{"h1", "h2"}, []string{""})
	want := []string{"h1", "h2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}
