package fxmath

import (
	"testing"

	"github.com/lodenkai/etchling/fix64"
)

func TestSinTableShape(t *testing.T) {
	if SinLUT[0] != 0 {
		t.Errorf("Expected first entry 0, got %d", SinLUT[0])
	}
	if SinLUT[lutSize-1] != fix64.One {
		t.Errorf("Expected last entry One, got %d", SinLUT[lutSize-1])
	}
	// Entry 85 is the pi/6 node; its sine is exactly one half.
	if SinLUT[85] != fix64.Half {
		t.Errorf("Expected entry 85 to be Half, got %d", SinLUT[85])
	}
	for i := 0; i < lutSize-1; i++ {
		if SinLUT[i] > SinLUT[i+1] {
			t.Fatalf("Table not monotonic at %d: %d > %d", i, SinLUT[i], SinLUT[i+1])
		}
	}
}

func TestSinGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"zero", 0, 0},
		{"pi over 2", 6746518852, 4294967296},
		{"pi", 13493037704, 0},
		{"negative pi over 2", -6746518852, -4294967296},
		{"pi over 6", 2248839617, 2147483647},
		{"pi over 4", 3373259426, 3036986094},
		{"one radian", 4294967296, 3614075009},
		{"thirty radians", 128849018880, -4243553748},
		{"minus hundred radians", -429496729600, 2174817355},
		{"max angle", 9223372036854775807, -4171743895},
		{"min angle plus one", -9223372036854775807, 4171743894},
	}
	for _, c := range cases {
		if got := Sin(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestCosGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"zero", 0, 4294967296},
		{"pi over 2", 6746518852, 0},
		{"pi", 13493037704, -4294967296},
		{"one radian", 4294967296, 2320570891},
		{"minus one radian", -4294967296, 2320570891},
	}
	for _, c := range cases {
		if got := Cos(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestSinSymmetry(t *testing.T) {
	for k := int64(-2500); k < 2500; k++ {
		x := k*5678901 + 13
		got := Sin(-x) + Sin(x)
		if got < -1 || got > 1 {
			t.Fatalf("Sin(-x) != -Sin(x) beyond one unit at x=%d: residue %d", x, got)
		}
	}
}

func TestSinPeriodicity(t *testing.T) {
	for k := int64(-2500); k < 2500; k++ {
		x := k*5678901 + 13
		if a, b := Sin(x+fix64.PiTimes2), Sin(x); a != b {
			t.Fatalf("Sin(x+2pi) != Sin(x) at x=%d: %d vs %d", x, a, b)
		}
	}
}

func TestSqrtGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"zero", 0, 0},
		{"one", fix64.One, fix64.One},
		{"two", 8589934592, 6074001000},
		{"half", 2147483648, 3037000500},
		{"smallest step", 1, 65536},
		{"max", 9223372036854775807, 199032864766430},
		{"hundred", 429496729600, 42949672960},
	}
	for _, c := range cases {
		if got := Sqrt(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestSqrtPerfectSquares(t *testing.T) {
	for n := int64(0); n <= 1000; n++ {
		if got := Sqrt(fix64.FromInt(n * n)); got != fix64.FromInt(n) {
			t.Errorf("Sqrt(%d^2): Expected %d, got %d", n, fix64.FromInt(n), got)
		}
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	// The rounded root squares back to within one root-scaled unit.
	for k := int64(1); k < 3000; k++ {
		x := k*918273645 + 7
		s := Sqrt(x)
		err := fix64.Mul(s, s) - x
		if err < 0 {
			err = -err
		}
		if bound := (s >> 31) + 1; err > bound {
			t.Fatalf("Sqrt round trip off by %d (> %d) at x=%d", err, bound, x)
		}
	}
}

func TestSqrtNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on negative Sqrt argument")
		}
	}()
	Sqrt(-1)
}

func TestLog2GoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"three", 12884901888, 6807362105},
		{"ten", 42949672960, 14267572527},
		{"max", 9223372036854775807, 133143986175},
		{"one and a half", 6442450944, 2512394809},
	}
	for _, c := range cases {
		if got := Log2(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestLog2PowersOfTwo(t *testing.T) {
	for k := int64(0); k <= 30; k++ {
		if got := Log2(fix64.One << k); got != fix64.FromInt(k) {
			t.Errorf("Log2(2^%d): Expected %d, got %d", k, fix64.FromInt(k), got)
		}
	}
	for k := int64(1); k <= 31; k++ {
		if got := Log2(fix64.One >> k); got != fix64.FromInt(-k) {
			t.Errorf("Log2(2^-%d): Expected %d, got %d", k, fix64.FromInt(-k), got)
		}
	}
	// The smallest representable value is 2^-32 exactly.
	if got := Log2(1); got != fix64.Log2Min {
		t.Errorf("Expected Log2Min, got %d", got)
	}
}

func TestLog2NonPositivePanics(t *testing.T) {
	for _, x := range []int64{0, -1, -fix64.One} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for Log2(%d)", x)
				}
			}()
			Log2(x)
		}()
	}
}

func TestLogGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"ten", 42949672960, 9889527667},
		{"e", 11674931554, 4294967294},
		{"tenth", 429496730, -9889527665},
	}
	for _, c := range cases {
		if got := Log(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestExpGoldenValues(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"zero", 0, fix64.One},
		{"one", fix64.One, fix64.E},
		{"two", 8589934592, 31735754294},
		{"minus two", -8589934592, 581260615},
		{"ten", 42949672960, 94602950235806},
		{"half", 2147483648, 7081203936},
		{"minus half", -2147483648, 2605029348},
		{"just below ln max", 92288378625, 9221280674091416384},
	}
	for _, c := range cases {
		if got := Exp(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestExpSaturationBounds(t *testing.T) {
	if got := Exp(fix64.LnMax); got != fix64.Max {
		t.Errorf("Expected Max at LnMax, got %d", got)
	}
	if got := Exp(fix64.Max); got != fix64.Max {
		t.Errorf("Expected Max above LnMax, got %d", got)
	}
	if got := Exp(fix64.LnMin); got != 0 {
		t.Errorf("Expected 0 at LnMin, got %d", got)
	}
	if got := Exp(fix64.Min); got != 0 {
		t.Errorf("Expected 0 below LnMin, got %d", got)
	}
}

func TestExpLogInverse(t *testing.T) {
	for k := int64(1); k < 1200; k++ {
		x := k*3579139 + fix64.One/16
		got := Exp(Log(x))
		err := got - x
		if err < 0 {
			err = -err
		}
		if bound := x >> 20; err > bound {
			t.Fatalf("Exp(Log(%d)) = %d, off by %d (> %d)", x, got, err, bound)
		}
	}
}

var benchSink int64

func BenchmarkSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Sin(int64(i) * 48157341)
	}
}

func BenchmarkCos(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Cos(int64(i) * 48157341)
	}
}

func BenchmarkSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Sqrt(int64(i)*987654321 + 1)
	}
}

func BenchmarkLog2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Log2(int64(i)*987654321 + 1)
	}
}

func BenchmarkExp(b *testing.B) {
	x := fix64.FromInt(3) + fix64.Half
	for i := 0; i < b.N; i++ {
		benchSink = Exp(x)
	}
}
