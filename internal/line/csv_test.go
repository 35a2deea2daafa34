package line_test

import (
	"testing"

	"github.com/jacoelho/humdrum/internal/line"
)

func TestConvertCSV(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		separator string
		want      string
	}{
		{
			name: "plain fields",
			text: "**kern,**dynam",
			want: "**kern\t**dynam",
		},
		{
			name: "default separator on empty",
			text: "4c,f",
			want: "4c\tf",
		},
		{
			name: "quoted field keeps separator",
			text: `4c,"f, then p"`,
			want: "4c\tf, then p",
		},
		{
			name: "escaped quote inside quoted field",
			text: `"he said ""hi""",4c`,
			want: `he said "hi"` + "\t4c",
		},
		{
			name:      "custom separator",
			text:      "4c;4d;4e",
			separator: ";",
			want:      "4c\t4d\t4e",
		},
		{
			name:      "multi-character separator",
			text:      "4c||4d",
			separator: "||",
			want:      "4c\t4d",
		},
		{
			name: "empty fields",
			text: "4c,,4e",
			want: "4c\t\t4e",
		},
		{
			name: "no separator",
			text: "!! a global comment",
			want: "!! a global comment",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := line.ConvertCSV(tc.text, tc.separator); got != tc.want {
				t.Fatalf("ConvertCSV(%q, %q) = %q, want %q", tc.text, tc.separator, got, tc.want)
			}
		})
	}
}
