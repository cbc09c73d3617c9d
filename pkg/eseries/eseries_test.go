package eseries

import (
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		digits []float64
		scales []float64
		want   []float64
	}{
		{
			name:   "small series",
			digits: []float64{1.0, 2.0},
			scales: []float64{10, 100},
			want:   []float64{10, 20, 100, 200},
		},
		{
			name:   "duplicates are kept",
			digits: []float64{1.0, 1.0},
			scales: []float64{10},
			want:   []float64{10, 10},
		},
		{
			name:   "no scales",
			digits: []float64{1.0, 2.0},
			scales: nil,
			want:   []float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.digits, tt.scales)
			if len(got) != len(tt.want) {
				t.Fatalf("Expand() returned %d values, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expand()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExpandE24(t *testing.T) {
	got := Expand(E24, DefaultScales)
	if len(got) != len(E24)*len(DefaultScales) {
		t.Fatalf("Expand() returned %d values, want %d", len(got), len(E24)*len(DefaultScales))
	}

	for i, v := range got {
		scale := DefaultScales[i/len(E24)]
		digit := E24[i%len(E24)]
		if v != digit*scale {
			t.Errorf("value %d = %v, want %v*%v", i, v, digit, scale)
		}
	}

	if got[0] != 100 || got[len(got)-1] != 910000 {
		t.Errorf("range = [%v, %v], want [100, 910000]", got[0], got[len(got)-1])
	}
}
