package band

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{"6.0.200", "6.0.200", false},
		{"6.0.203", "6.0.200", false},
		{"6.0.299", "6.0.200", false},
		{"6.0.100", "6.0.100", false},
		{"6.0.0", "6.0.0", false},
		{"7.0.105-rc.2.21505.57", "7.0.100-rc.2", false},
		{"6.0.100-preview.4.12345", "6.0.100-preview.4", false},
		{"6.0.200-preview.4", "6.0.200-preview.4", false},
		{"8.0.303+sha.abcdef", "8.0.300", false},
		{"  6.0.200 ", "6.0.200", false},
		{"", "", true},
		{"not-a-version", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if err != nil {
				return
			}
			if b.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, b.String(), tt.want)
			}
		})
	}
}

func TestParse_idempotent(t *testing.T) {
	first := MustParse("6.0.203-preview.4.99")
	second := MustParse(first.String())
	if !first.Equal(second) {
		t.Errorf("re-parsing %q gave %q", first, second)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"6.0.100", "6.0.200", -1},
		{"6.0.200", "6.0.100", 1},
		{"6.0.200", "6.0.200", 0},
		{"6.0.200", "7.0.100", -1},
		{"6.0.200-preview.4", "6.0.200", -1},
		{"6.0.200-preview.4", "6.0.200-rc.1", -1},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).Compare(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare_zeroValue(t *testing.T) {
	var zero FeatureBand
	b := MustParse("6.0.100")

	if !zero.Less(b) {
		t.Error("zero band should sort before any parsed band")
	}
	if !zero.Equal(FeatureBand{}) {
		t.Error("zero bands should be equal")
	}
	if !zero.IsZero() || b.IsZero() {
		t.Error("IsZero misreported")
	}
}

func TestWithoutPrerelease(t *testing.T) {
	b := MustParse("6.0.200-preview.4")
	if got := b.WithoutPrerelease().String(); got != "6.0.200" {
		t.Errorf("WithoutPrerelease() = %q, want %q", got, "6.0.200")
	}

	released := MustParse("6.0.200")
	if !released.WithoutPrerelease().Equal(released) {
		t.Error("WithoutPrerelease should not change a released band")
	}
}

func TestMax(t *testing.T) {
	a := MustParse("6.0.100")
	b := MustParse("6.0.300")
	if got := Max(a, b); !got.Equal(b) {
		t.Errorf("Max = %q, want %q", got, b)
	}
	if got := Max(b, a); !got.Equal(b) {
		t.Errorf("Max = %q, want %q", got, b)
	}
}
