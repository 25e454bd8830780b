package htmlsanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "NCO course", "NCO course"},
		{"hebrew text", "קורס מפקדים", "קורס מפקדים"},
		{"strips tags", "<b>NCO</b> course", "NCO course"},
		{"strips script", `<script>alert("x")</script>ok`, "ok"},
		{"trims", "  leave note  ", "leave note"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
