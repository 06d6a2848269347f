package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Blue Hoodie", "blue-hoodie"},
		{"renamed title", "Blue Hoodie v2", "blue-hoodie-v2"},
		{"mixed case and punctuation", "Luku Store.nl: Summer Drop!", "luku-storenl-summer-drop"},
		{"accents", "Édition Déjà Vu", "edition-deja-vu"},
		{"underscores and runs", "mix__of   spaces", "mix-of-spaces"},
		{"leading and trailing separators", "  --Trimmed--  ", "trimmed"},
		{"empty input", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
