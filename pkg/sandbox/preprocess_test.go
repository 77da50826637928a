package sandbox

import "testing"

func TestPreprocessRewritesKeywordToString(t *testing.T) {
	got := preprocessSource(`(set_material :roughness 0.5)`)
	want := `(set_material "__kw_roughness" 0.5)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPreprocessRewritesKebabCaseToUnderscore(t *testing.T) {
	got := preprocessSource(`(sd-sphere x y z r)`)
	want := `(sd_sphere x y z r)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPreprocessLeavesSubtractionAlone(t *testing.T) {
	got := preprocessSource(`(- 5 3)`)
	want := `(- 5 3)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPreprocessLeavesStringContentsUntouched(t *testing.T) {
	got := preprocessSource(`(emit_triangle "a-kebab :not-a-keyword")`)
	want := `(emit_triangle "a-kebab :not-a-keyword")`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPreprocessConvertsSemicolonComments(t *testing.T) {
	got := preprocessSource("; a comment\n(sd_sphere x y z r)")
	want := "// a comment\n(sd_sphere x y z r)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
