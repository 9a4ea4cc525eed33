package markdown

import "testing"

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain heading", "# Widgets Overview\n\nBody text.", "Widgets Overview"},
		{"heading after paragraph", "intro\n\n# Later Title\n", "Later Title"},
		{"h2 only", "## Not a title\n", ""},
		{"no heading", "just prose", ""},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FirstHeading([]byte(test.body)); got != test.want {
				t.Errorf("FirstHeading() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestHasContent(t *testing.T) {
	if HasContent([]byte("   \n\t\n")) {
		t.Error("whitespace-only body should have no content")
	}
	if !HasContent([]byte("# FAQ\n\nQ: why?\n")) {
		t.Error("markdown body should report content")
	}
}
