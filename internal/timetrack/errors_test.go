package timetrack

import "testing"

func TestParseError_LocatedDecoratesWithoutChangingKind(t *testing.T) {
	base := InvalidDate("2020-13-01")
	located := base.Located("journal/2020.md", 5)

	if located.Kind != KindInvalidDate {
		t.Fatalf("Located must preserve the inner kind, got %v", located.Kind)
	}
	if !located.IsLocated() {
		t.Fatal("expected IsLocated() true after Located()")
	}
	if base.IsLocated() {
		t.Fatal("Located must not mutate the receiver")
	}
	if located.File != "journal/2020.md" || located.Line != 5 {
		t.Fatalf("unexpected location: %+v", located)
	}
}

func TestParseError_AsLocated(t *testing.T) {
	var err error = InvalidTime("9999999999h")
	pe, ok := AsLocated(err)
	if !ok || pe.Kind != KindInvalidTime {
		t.Fatalf("expected to recover a *ParseError, got %v (ok=%v)", err, ok)
	}
}

func TestParseError_ErrorMessageCarriesRawText(t *testing.T) {
	err := MissingTime("- #proj-a no duration here")
	if err.Message != "- #proj-a no duration here" {
		t.Fatalf("expected raw text preserved verbatim, got %q", err.Message)
	}
}
