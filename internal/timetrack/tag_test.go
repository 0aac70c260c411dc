package timetrack

import "testing"

func TestClassifyTagToken(t *testing.T) {
	tests := []struct {
		tok     string
		wantOK  bool
		wantTag Tag
	}{
		{"#proj-a", true, Tag{Kind: TagProject, ID: "proj-a"}},
		{"##shipped", true, Tag{Kind: TagOutcome, ID: "shipped"}},
		{"###toomany", false, Tag{}},
		{"#", false, Tag{}},
		{"plain", false, Tag{}},
		{"#a_b1", true, Tag{Kind: TagProject, ID: "a_b1"}},
	}
	for _, tt := range tests {
		got, ok := classifyTagToken(tt.tok)
		if ok != tt.wantOK {
			t.Fatalf("%q: got ok=%v, want %v", tt.tok, ok, tt.wantOK)
		}
		if ok && got != tt.wantTag {
			t.Fatalf("%q: got %+v, want %+v", tt.tok, got, tt.wantTag)
		}
	}
}

func TestNewProjectOutcomeTag(t *testing.T) {
	if got := NewProjectTag("#proj-a"); got.ID != "proj-a" || got.Kind != TagProject {
		t.Fatalf("got %+v", got)
	}
	if got := NewOutcomeTag("##shipped"); got.ID != "shipped" || got.Kind != TagOutcome {
		t.Fatalf("got %+v", got)
	}
	if got := NewProjectTag("proj-a"); got.ID != "proj-a" {
		t.Fatalf("bare identifier should normalize the same: got %+v", got)
	}
}

func TestTagString(t *testing.T) {
	if (Tag{Kind: TagProject, ID: "a"}).String() != "#a" {
		t.Fatal("project tag should render with single #")
	}
	if (Tag{Kind: TagOutcome, ID: "a"}).String() != "##a" {
		t.Fatal("outcome tag should render with double #")
	}
}
