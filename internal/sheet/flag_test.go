package sheet

import "testing"

// TestCoerceFlagTruthy checks every accepted token in several letter cases.
func TestCoerceFlagTruthy(t *testing.T) {
	truthy := []string{
		"evet", "EVET", "Evet", "eVeT",
		"yes", "YES", "Yes",
		"true", "TRUE", "True",
		"1",
		"var", "VAR", "Var",
		"x", "X",
		"✓",
		" evet ", "\tyes",
	}
	for _, in := range truthy {
		if got := CoerceFlag(in); got != 1 {
			t.Errorf("CoerceFlag(%q) = %d, want 1", in, got)
		}
	}
}

// TestCoerceFlagFalsy checks that everything outside the token set maps to 0,
// including empty and Turkish "no" spellings.
func TestCoerceFlagFalsy(t *testing.T) {
	falsy := []string{
		"", " ", "hayir", "hayır", "HAYIR", "no", "false", "0",
		"yok", "2", "xx", "evet!", "✗", "done",
	}
	for _, in := range falsy {
		if got := CoerceFlag(in); got != 0 {
			t.Errorf("CoerceFlag(%q) = %d, want 0", in, got)
		}
	}
}

func TestFormatFlag(t *testing.T) {
	if got := FormatFlag(1); got != "EVET" {
		t.Errorf("FormatFlag(1) = %q, want EVET", got)
	}
	if got := FormatFlag(0); got != "HAYIR" {
		t.Errorf("FormatFlag(0) = %q, want HAYIR", got)
	}
}

// TestCoerceFormatRoundTrip: exported tokens coerce back to the same flag.
func TestCoerceFormatRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1} {
		if got := CoerceFlag(FormatFlag(v)); got != v {
			t.Errorf("CoerceFlag(FormatFlag(%d)) = %d, want %d", v, got, v)
		}
	}
}
