package pathspec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nezdolik/reproto/internal/pathspec"
)

func TestParsePathEmpty(t *testing.T) {
	got, err := pathspec.ParsePath("<test>", []byte("/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Steps) != 0 {
		t.Fatalf("expected zero steps for the empty path, got %#v", got.Steps)
	}
}

func TestParsePathVariable(t *testing.T) {
	// Scenario E from spec.md §8.
	got, err := pathspec.ParsePath("<test>", []byte("/toy/{request}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &pathspec.PathSpec{
		Steps: []pathspec.PathStep{
			{Parts: []pathspec.PathPart{pathspec.Segment("toy")}},
			{Parts: []pathspec.PathPart{pathspec.Variable("request")}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathMixedStep(t *testing.T) {
	got, err := pathspec.ParsePath("<test>", []byte("/users/{id}.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &pathspec.PathSpec{
		Steps: []pathspec.PathStep{
			{Parts: []pathspec.PathPart{pathspec.Segment("users")}},
			{Parts: []pathspec.PathPart{pathspec.Variable("id"), pathspec.Segment(".json")}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePathMissingLeadingSlash(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("toy/{request}"))
	if err == nil {
		t.Fatal("expected an error for a path with no leading '/'")
	}
	perr, ok := err.(*pathspec.Error)
	if !ok {
		t.Fatalf("expected *pathspec.Error, got %T", err)
	}
	if perr.Kind != pathspec.ErrMissingLeadingSlash {
		t.Fatalf("expected ErrMissingLeadingSlash, got %v", perr.Kind)
	}
}

func TestParsePathUnterminatedVariable(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("/toy/{request"))
	perr, ok := err.(*pathspec.Error)
	if !ok {
		t.Fatalf("expected *pathspec.Error, got %T", err)
	}
	if perr.Kind != pathspec.ErrUnterminatedVariable {
		t.Fatalf("expected ErrUnterminatedVariable, got %v", perr.Kind)
	}
}

func TestParsePathEmptyVariable(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("/toy/{}"))
	perr, ok := err.(*pathspec.Error)
	if !ok {
		t.Fatalf("expected *pathspec.Error, got %T", err)
	}
	if perr.Kind != pathspec.ErrEmptyVariable {
		t.Fatalf("expected ErrEmptyVariable, got %v", perr.Kind)
	}
}

func TestParsePathInvalidVariableName(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("/toy/{1bad}"))
	perr, ok := err.(*pathspec.Error)
	if !ok {
		t.Fatalf("expected *pathspec.Error, got %T", err)
	}
	if perr.Kind != pathspec.ErrInvalidVariableName {
		t.Fatalf("expected ErrInvalidVariableName, got %v", perr.Kind)
	}
}

func TestParsePathTrailingSlash(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("/toy/"))
	if err == nil {
		t.Fatal("expected an error for a dangling trailing '/'")
	}
}

func TestParsePathDoubleSlash(t *testing.T) {
	_, err := pathspec.ParsePath("<test>", []byte("//toy"))
	if err == nil {
		t.Fatal("expected an error for an empty step between two '/'")
	}
}
