package match

import (
	"reflect"
	"testing"
)

func TestPathVariants_RepoPath(t *testing.T) {
	got := PathVariants("/cassava/repo.git")
	want := []string{"cassava/repo", "cassava", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_NoLeadingSlash(t *testing.T) {
	got := PathVariants("cassava/repo")
	want := []string{"cassava/repo", "cassava", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_SingleSegment(t *testing.T) {
	got := PathVariants("/repo")
	want := []string{"repo", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_Empty(t *testing.T) {
	got := PathVariants("")
	want := []string{""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_SlashOnly(t *testing.T) {
	got := PathVariants("/")
	want := []string{""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_GitSuffixOnly(t *testing.T) {
	got := PathVariants(".git")
	want := []string{""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}

func TestPathVariants_DeepPath(t *testing.T) {
	got := PathVariants("/group/sub/repo.git")
	want := []string{"group/sub/repo", "group/sub", "group", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got: %v", want, got)
	}
}
