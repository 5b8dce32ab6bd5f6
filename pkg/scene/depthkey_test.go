package scene

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b DepthKey
		want int
	}{
		{"equal", Key(1, 2), Key(1, 2), 0},
		{"equal empty", Key(), Key(), 0},
		{"first element", Key(1), Key(2), -1},
		{"second element", Key(3, 1), Key(3, 2), -1},
		{"prefix is smaller", Key(2), Key(2, 5), -1},
		{"prefix is smaller reversed", Key(2, 5), Key(2), 1},
		{"longer but smaller head", Key(1, 99, 99), Key(2), -1},
		{"negative layer", PlaceholderDepth, Key(0), -1},
		{"mixed magnitudes", Key(4, 380, 1), Key(4, 380, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}
