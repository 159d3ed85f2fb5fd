package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"zero stays zero", 0, 0, 0, 0},
		{"axis", 5, 0, 1, 0},
		{"3-4-5", 3, 4, 0.6, 0.8},
		{"negative", -2, -2, -math.Sqrt2 / 2, -math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(Vec(tt.x, tt.y))
			if math.Abs(got.X-tt.wantX) > eps || math.Abs(got.Y-tt.wantY) > eps {
				t.Fatalf("Normalize(%v,%v) = %+v, want (%v,%v)", tt.x, tt.y, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range [][2]float64{{1, 1}, {0.001, 7}, {-300, 12}} {
		l := Length(Normalize(Vec(v[0], v[1])))
		if math.Abs(l-1) > eps {
			t.Errorf("length of normalized %v = %v", v, l)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Vec(1, 1), Vec(4, 5)); d != 5 {
		t.Fatalf("Distance = %v, want 5", d)
	}
	if d := Distance(Vec(2, 2), Vec(2, 2)); d != 0 {
		t.Fatalf("Distance to self = %v", d)
	}
}

func TestDirectionCoincidentIsZero(t *testing.T) {
	if !IsZero(Direction(Vec(10, 10), Vec(10, 10))) {
		t.Fatal("direction between equal points should be zero")
	}
}

func TestClampLength(t *testing.T) {
	got := ClampLength(Vec(3, 4), 1)
	if math.Abs(Length(got)-1) > eps {
		t.Fatalf("clamped length = %v", Length(got))
	}
	short := Vec(0.3, 0.4)
	if ClampLength(short, 1) != short {
		t.Fatal("short vector should be unchanged")
	}
}
