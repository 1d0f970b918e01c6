package core

import "testing"

func TestFormatVector(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want string
	}{
		{name: "empty", in: nil, want: "[]"},
		{name: "single", in: []float64{1}, want: "[1.000000000]"},
		{name: "negative", in: []float64{1, -0.5, 0.1234567894}, want: "[1.000000000, -0.500000000, 0.123456789]"},
		{name: "round up", in: []float64{0.0000000006}, want: "[0.000000001]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVector(tt.in); got != tt.want {
				t.Fatalf("FormatVector() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPairs(t *testing.T) {
	got := FormatPairs([][2]float64{{500, 80}, {1500.25, 120.5}})
	want := "[(500.000000000, 80.000000000), (1500.250000000, 120.500000000)]"
	if got != want {
		t.Fatalf("FormatPairs() = %q, want %q", got, want)
	}
}
