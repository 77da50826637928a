package sandbox

import (
	"strings"
	"testing"

	"github.com/chazu/scenecraft/pkg/sceneconfig"
)

func TestValidateRejectsEveryForbiddenIdentifier(t *testing.T) {
	for _, id := range sceneconfig.DefaultForbiddenIdentifiers {
		src := "(" + id + " 1 2 3)"
		res := Validate(src, sceneconfig.DefaultForbiddenIdentifiers)
		if res.Valid {
			t.Errorf("expected %q to be rejected, got valid", id)
		}
	}
}

func TestValidateRejectsForbiddenURLLiterals(t *testing.T) {
	cases := []string{
		`(emit_triangle "https://evil.example/x")`,
		`(emit_triangle "data:text/plain;base64,AAAA")`,
		`(emit_triangle "blob:abcd")`,
	}
	for _, src := range cases {
		res := Validate(src, nil)
		if res.Valid {
			t.Errorf("expected %q to be rejected", src)
		}
	}
}

func TestValidateAllowsOrdinaryStringLiterals(t *testing.T) {
	res := Validate(`(def label "red sphere") (set_material :roughness 0.5)`, sceneconfig.DefaultForbiddenIdentifiers)
	if !res.Valid {
		t.Fatalf("expected valid, got reason %q", res.Reason)
	}
}

func TestValidateRejectsExcessiveNesting(t *testing.T) {
	src := strings.Repeat("(", 70) + "1" + strings.Repeat(")", 70)
	res := Validate(src, nil)
	if res.Valid {
		t.Fatalf("expected nesting depth violation to be rejected")
	}
}

func TestValidateAllowsModerateNesting(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	res := Validate(src, nil)
	if !res.Valid {
		t.Fatalf("expected valid, got reason %q", res.Reason)
	}
}

func TestValidateIgnoresIdentifiersInsideStrings(t *testing.T) {
	res := Validate(`(emit_triangle "fetch this")`, []string{"fetch"})
	if !res.Valid {
		t.Fatalf("forbidden word inside a string literal should not trip identifier scanning, got reason %q", res.Reason)
	}
}
