package schema

import "testing"

func TestValidateInputRejectsMissingCode(t *testing.T) {
	_, err := ValidateInput([]byte(`{"description": "a red sphere"}`))
	if err == nil {
		t.Fatalf("expected an error when code is missing")
	}
}

func TestValidateInputRejectsUnknownField(t *testing.T) {
	raw := []byte(`{"code": "(sphere_mesh 0 0 0 1 1 0 0 24)", "seed": 7}`)
	_, err := ValidateInput(raw)
	if err == nil {
		t.Fatalf("expected an error for an additional property not in the schema")
	}
}

func TestValidateInputAcceptsCodeWithoutDescription(t *testing.T) {
	input, err := ValidateInput([]byte(`{"code": "(sphere_mesh 0 0 0 1 1 0 0 24)"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Code != "(sphere_mesh 0 0 0 1 1 0 0 24)" {
		t.Fatalf("code = %q", input.Code)
	}
	if input.Description != "" {
		t.Fatalf("expected empty description, got %q", input.Description)
	}
}

func TestValidateInputAcceptsCodeAndDescription(t *testing.T) {
	input, err := ValidateInput([]byte(`{"code": "(box_mesh 0 0 0 1 1 1 1 1 1 4)", "description": "a white box"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Description != "a white box" {
		t.Fatalf("description = %q", input.Description)
	}
}

func TestValidateInputRejectsInvalidJSON(t *testing.T) {
	_, err := ValidateInput([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}
