package svgmap

import (
	"path/filepath"
	"testing"
)

func TestDefaultSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data string
		want string
	}{
		{"ExampleData.csv", "_ExampleData"},
		{"data/2024.v2.csv", "_2024.v2"},
		{"noext", "_noext"},
	}
	for _, tt := range tests {
		if got := DefaultSuffix(tt.data); got != tt.want {
			t.Errorf("DefaultSuffix(%q) = %q, want %q", tt.data, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		suffix   string
		label    string
		outDir   string
		want     string
	}{
		{
			name:     "beside template",
			template: "EMN.svg",
			suffix:   "_ExampleData",
			label:    "0",
			want:     "EMN_ExampleData.0.svg",
		},
		{
			name:     "template in directory",
			template: filepath.Join("maps", "EMN.svg"),
			suffix:   "_d",
			label:    "12",
			want:     filepath.Join("maps", "EMN_d.12.svg"),
		},
		{
			name:     "output directory replaces template directory",
			template: filepath.Join("maps", "EMN.svg"),
			suffix:   "_d",
			label:    "1",
			outDir:   "out",
			want:     filepath.Join("out", "EMN_d.1.svg"),
		},
		{
			name:     "empty suffix",
			template: "map.svg",
			label:    "2020",
			want:     "map.2020.svg",
		},
		{
			name:     "separators in label are replaced",
			template: "map.svg",
			label:    "2020/21",
			want:     "map.2020_21.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputPath(tt.template, tt.suffix, tt.label, tt.outDir); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
