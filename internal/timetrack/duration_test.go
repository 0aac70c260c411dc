package timetrack

import "testing"

func TestParseDurationToken(t *testing.T) {
	tests := []struct {
		name    string
		tok     string
		want    uint32
		wantErr bool
	}{
		{"minutes", "10m", 10, false},
		{"hours", "1h", 60, false},
		{"pomodoro", "1p", 30, false},
		{"leading zeros", "05m", 5, false},
		{"zero alone parses to zero", "0m", 0, false},
		{"overflow", "9999999999h", 0, true},
		{"bad unit", "10x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationToken(tt.tok)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.tok)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLooksLikeDurationToken(t *testing.T) {
	if !looksLikeDurationToken("1h") {
		t.Fatal("expected 1h to look like a duration token")
	}
	if looksLikeDurationToken("2x") {
		t.Fatal("2x must not look like a duration token (unknown unit)")
	}
	if looksLikeDurationToken("h") {
		t.Fatal("h with no digits must not look like a duration token")
	}
}

func TestDurationTokensSum(t *testing.T) {
	e, err := ParseEntry("#proj 1h 10m 1p rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Minutes() != 100 {
		t.Fatalf("got %d minutes, want 100", e.Minutes())
	}
}
