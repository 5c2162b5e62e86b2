package fix64

import "testing"

func TestAddSaturates(t *testing.T) {
	if got := Add(Max, 1); got != Max {
		t.Errorf("Expected Add(Max, 1) to saturate to Max, got %d", got)
	}
	if got := Add(Min, -1); got != Min {
		t.Errorf("Expected Add(Min, -1) to saturate to Min, got %d", got)
	}
	if got := Add(Max, Max); got != Max {
		t.Errorf("Expected Add(Max, Max) to saturate to Max, got %d", got)
	}
	if got := Add(FromInt(1), FromInt(2)); got != FromInt(3) {
		t.Errorf("Expected 3.0, got %d", got)
	}
	if got := Add(FromInt(-1), FromInt(-2)); got != FromInt(-3) {
		t.Errorf("Expected -3.0, got %d", got)
	}
}

func TestSubSaturates(t *testing.T) {
	if got := Sub(Min, 1); got != Min {
		t.Errorf("Expected Sub(Min, 1) to saturate to Min, got %d", got)
	}
	if got := Sub(Max, -1); got != Max {
		t.Errorf("Expected Sub(Max, -1) to saturate to Max, got %d", got)
	}
	if got := Sub(FromInt(5), FromInt(7)); got != FromInt(-2) {
		t.Errorf("Expected -2.0, got %d", got)
	}
}

func TestFastVariantsWrap(t *testing.T) {
	if got := FastAdd(Max, 1); got != Min {
		t.Errorf("Expected FastAdd(Max, 1) to wrap to Min, got %d", got)
	}
	if got := FastSub(Min, 1); got != Max {
		t.Errorf("Expected FastSub(Min, 1) to wrap to Max, got %d", got)
	}
	if got := FastAbs(Min); got != Min {
		t.Errorf("Expected FastAbs(Min) to wrap to Min, got %d", got)
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		name string
		x, y int64
		want int64
	}{
		{"integers", FromInt(3), FromInt(7), FromInt(21)},
		{"mixed signs", FromInt(-3), FromInt(7), FromInt(-21)},
		{"both negative", FromInt(-3), FromInt(-7), FromInt(21)},
		{"halves", Half, Half, 1 << 30},
		{"by zero", FromInt(1234), 0, 0},
		{"floor toward negative", -One, 1, -1},
		{"positive overflow", FromInt(1 << 20), FromInt(1 << 20), Max},
		{"negative overflow", FromInt(-(1 << 20)), FromInt(1 << 20), Min},
		{"min times minus one", Min, -One, Max},
	}
	for _, c := range cases {
		if got := Mul(c.x, c.y); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestMulVariantsAgree(t *testing.T) {
	vals := []int64{Min, Min + 1, -Max, -One, -Half, -3, -1, 0, 1, 3, Half, One, One + Half, Max - 1, Max}

	// FastMul and MulWide are two spellings of the same wrapped product.
	for _, x := range vals {
		for _, y := range vals {
			if fm, mw := FastMul(x, y), MulWide(x, y); fm != mw {
				t.Errorf("FastMul(%d, %d) = %d but MulWide = %d", x, y, fm, mw)
			}
		}
	}

	// Where no saturation applies, the checked multiply agrees too.
	small := []int64{-FromInt(40000), -One, -Half, -1, 0, 1, Half, One, FromInt(40000)}
	for _, x := range small {
		for _, y := range small {
			if m, mw := Mul(x, y), MulWide(x, y); m != mw {
				t.Errorf("Mul(%d, %d) = %d but MulWide = %d", x, y, m, mw)
			}
		}
	}
}

func TestDiv(t *testing.T) {
	cases := []struct {
		name string
		x, y int64
		want int64
	}{
		{"integers", FromInt(10), FromInt(2), FromInt(5)},
		{"mixed signs", FromInt(10), FromInt(-2), FromInt(-5)},
		{"one third", FromInt(1), FromInt(3), 1431655765},
		{"two thirds", FromInt(2), FromInt(3), 2863311531},
		{"negative third", -One, FromInt(3), -1431655765},
		{"half rounds up", 1, 1 << 33, 1},
		{"below half rounds down", 1, 1 << 34, 0},
		{"quotient overflow", One, 1, Max},
		{"negative quotient overflow", -One, 1, Min},
	}
	for _, c := range cases {
		if got := Div(c.x, c.y); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}

	// 1/3 * 3 lands one unit under One; division rounds, multiply floors.
	third := Div(One, FromInt(3))
	if got := Mul(third, FromInt(3)); got != One-1 {
		t.Errorf("Expected One-1, got %d", got)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on division by zero")
		}
	}()
	Div(One, 0)
}

func TestFloor(t *testing.T) {
	cases := []struct {
		x, want int64
	}{
		{0, 0},
		{One, One},
		{One + Half, One},
		{-Half, -One},
		{-One - Half, -2 * One},
		{5*One + 1, 5 * One},
	}
	for _, c := range cases {
		if got := Floor(c.x); got != c.want {
			t.Errorf("Floor(%d): Expected %d, got %d", c.x, c.want, got)
		}
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		want int64
	}{
		{"below half", 2*One + Half - 1, 2 * One},
		{"above half", 2*One + Half + 1, 3 * One},
		{"tie at even", 2*One + Half, 2 * One},
		{"tie at odd", 3*One + Half, 4 * One},
		{"negative tie at odd floor", -2*One - Half, -2 * One},
		{"negative tie at even floor", -3*One - Half, -4 * One},
		{"integral unchanged", 7 * One, 7 * One},
	}
	for _, c := range cases {
		if got := Round(c.x); got != c.want {
			t.Errorf("%s: Expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestSign(t *testing.T) {
	if got := Sign(-Half); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	if got := Sign(0); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := Sign(3); got != 1 {
		t.Errorf("Expected 1, got %d", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(FromInt(-5)); got != FromInt(5) {
		t.Errorf("Expected 5.0, got %d", got)
	}
	if got := Abs(FromInt(5)); got != FromInt(5) {
		t.Errorf("Expected 5.0, got %d", got)
	}
	if got := Abs(Min); got != Max {
		t.Errorf("Expected Abs(Min) to saturate to Max, got %d", got)
	}
}

func TestConversions(t *testing.T) {
	if got := ToInt(FromInt(123)); got != 123 {
		t.Errorf("Expected 123, got %d", got)
	}
	if got := ToInt(-One - Half); got != -2 {
		t.Errorf("Expected ToInt to floor to -2, got %d", got)
	}
	if got := FromFloat(1.5); got != One+Half {
		t.Errorf("Expected %d, got %d", int64(One+Half), got)
	}
	if got := ToFloat(One + Half); got != 1.5 {
		t.Errorf("Expected 1.5, got %f", got)
	}
}

var benchSink int64

func BenchmarkMul(b *testing.B) {
	x, y := FromInt(12345)+Half, FromInt(-678)+1
	for i := 0; i < b.N; i++ {
		benchSink = Mul(x, y)
	}
}

func BenchmarkFastMul(b *testing.B) {
	x, y := FromInt(12345)+Half, FromInt(-678)+1
	for i := 0; i < b.N; i++ {
		benchSink = FastMul(x, y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := FromInt(12345)+Half, FromInt(-678)+1
	for i := 0; i < b.N; i++ {
		benchSink = Div(x, y)
	}
}
