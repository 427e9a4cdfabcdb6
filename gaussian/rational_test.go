package gaussian

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(a, b, c, d int64) Rational {
	return MustInt64(a, b, c, d)
}

func TestNewCanonicalizes(t *testing.T) {
	v := r(2, 4, 0, 1)
	assert.Equal(t, "1,2,0,1", v.Canonical())
	assert.True(t, v.Equal(r(1, 2, 0, 1)))

	v = r(3, -9, -4, -6)
	assert.Equal(t, "-1,3,2,3", v.Canonical())

	_, err := NewInt64(1, 0, 0, 1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = NewInt64(1, 1, 1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestZeroValue(t *testing.T) {
	var zero Rational
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0,1,0,1", zero.Canonical())
	assert.True(t, zero.Equal(Zero()))
	assert.True(t, zero.Add(One()).IsOne())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		left     Rational
		right    Rational
		op       func(Rational, Rational) Rational
		expected string
	}{
		{"1/2 + 1/3", r(1, 2, 0, 1), r(1, 3, 0, 1), Rational.Add, "5,6,0,1"},
		{"i * i", r(0, 1, 1, 1), r(0, 1, 1, 1), Rational.Mul, "-1,1,0,1"},
		{"1/2 - 1/3", r(1, 2, 0, 1), r(1, 3, 0, 1), Rational.Sub, "1,6,0,1"},
		{"(1+2i)(3+4i)", r(1, 1, 2, 1), r(3, 1, 4, 1), Rational.Mul, "-5,1,10,1"},
		{"(1/2+1/3i) + (1/2-1/3i)", r(1, 2, 1, 3), r(1, 2, -1, 3), Rational.Add, "1,1,0,1"},
		{"(1/2+i)(1/2-i)", r(1, 2, 1, 1), r(1, 2, -1, 1), Rational.Mul, "5,4,0,1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.op(test.left, test.right)
			if result.Canonical() != test.expected {
				t.Errorf("%s = %s, want %s", test.name, result, test.expected)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	q, err := r(1, 1, 0, 1).Div(r(1, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "1,2,-1,2", q.Canonical())

	q, err = r(-5, 1, 10, 1).Div(r(3, 1, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, "1,1,2,1", q.Canonical())

	_, err = One().Div(Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Zero().Reciprocal()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMod(t *testing.T) {
	tests := []struct {
		left, right Rational
		expected    string
	}{
		{r(7, 1, 0, 1), r(3, 1, 0, 1), "1,1,0,1"},
		{r(-7, 1, 0, 1), r(3, 1, 0, 1), "-1,1,0,1"},
		{r(7, 2, 0, 1), r(1, 1, 0, 1), "1,2,0,1"},
		{r(5, 6, 0, 1), r(1, 4, 0, 1), "1,12,0,1"},
	}

	for _, test := range tests {
		result, err := test.left.Mod(test.right)
		require.NoError(t, err)
		if result.Canonical() != test.expected {
			t.Errorf("%s %% %s = %s, want %s", test.left, test.right, result, test.expected)
		}
	}

	_, err := r(1, 1, 1, 1).Mod(One())
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = One().Mod(I())
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = One().Mod(Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	tests := []struct {
		base     Rational
		exponent int
		expected string
	}{
		{I(), 0, "1,1,0,1"},
		{Zero(), 0, "1,1,0,1"},
		{I(), 2, "-1,1,0,1"},
		{I(), 3, "0,1,-1,1"},
		{I(), 4, "1,1,0,1"},
		{r(1, 1, 1, 1), 2, "0,1,2,1"},
		{r(1, 1, 1, 1), 8, "16,1,0,1"},
		{r(2, 3, 0, 1), 3, "8,27,0,1"},
		{r(2, 1, 0, 1), -2, "1,4,0,1"},
		{I(), -1, "0,1,-1,1"},
		{r(1, 1, 1, 1), -2, "0,1,-1,2"},
	}

	for _, test := range tests {
		result, err := test.base.Pow(test.exponent)
		require.NoError(t, err)
		if result.Canonical() != test.expected {
			t.Errorf("(%s) ** %d = %s, want %s", test.base, test.exponent, result, test.expected)
		}
	}

	_, err := Zero().Pow(-1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPowMatchesRepeatedMultiplication(t *testing.T) {
	base := r(2, 3, -1, 5)
	want := One()
	for n := 0; n <= 12; n++ {
		got, err := base.Pow(n)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "n=%d: got %s, want %s", n, got, want)
		want = want.Mul(base)
	}
}

func sampleValues() []Rational {
	return []Rational{
		r(0, 1, 0, 1),
		r(1, 1, 0, 1),
		r(-3, 4, 0, 1),
		r(0, 1, 1, 1),
		r(1, 2, -1, 3),
		r(7, 5, 2, 9),
		r(-11, 6, -5, 4),
		r(100, 7, 3, 1),
	}
}

func TestFieldLaws(t *testing.T) {
	values := sampleValues()
	for _, x := range values {
		for _, y := range values {
			assert.True(t, x.Add(y).Equal(y.Add(x)), "%s + %s commutes", x, y)
			assert.True(t, x.Mul(y).Equal(y.Mul(x)), "%s * %s commutes", x, y)
			assert.True(t, x.Sub(y).Add(y).Equal(x), "(%s - %s) + %s", x, y, y)

			for _, z := range values {
				assert.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))), "addition associates")
				assert.True(t, x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z))), "multiplication associates")
				assert.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))), "distributes")
			}
		}

		if x.IsZero() {
			continue
		}
		inv, err := x.Reciprocal()
		require.NoError(t, err)
		assert.True(t, x.Mul(inv).IsOne(), "%s * 1/%s", x, x)

		q, err := x.Div(x)
		require.NoError(t, err)
		assert.True(t, q.IsOne())
	}
}

func TestConjAndMagnitudeSquared(t *testing.T) {
	v := r(3, 2, -4, 3)
	assert.Equal(t, "3,2,4,3", v.Conj().Canonical())

	m := v.MagnitudeSquared()
	assert.True(t, m.IsReal())
	assert.Equal(t, "145,36,0,1", m.Canonical())
	assert.True(t, v.Mul(v.Conj()).Equal(m))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		value                                 Rational
		real, imaginary, integer, gaussianInt bool
		zero, one, positive, negative         bool
	}{
		{r(0, 1, 0, 1), true, false, true, true, true, false, false, false},
		{r(1, 1, 0, 1), true, false, true, true, false, true, true, false},
		{r(-5, 1, 0, 1), true, false, true, true, false, false, false, true},
		{r(3, 4, 0, 1), true, false, false, false, false, false, true, false},
		{r(0, 1, 2, 1), false, true, false, true, false, false, false, false},
		{r(1, 1, 1, 1), false, false, false, true, false, false, false, false},
		{r(-1, 2, 1, 3), false, false, false, false, false, false, false, false},
	}

	for _, test := range tests {
		v := test.value
		t.Run(v.Canonical(), func(t *testing.T) {
			assert.Equal(t, test.real, v.IsReal(), "IsReal")
			assert.Equal(t, test.imaginary, v.IsPurelyImaginary(), "IsPurelyImaginary")
			assert.Equal(t, test.integer, v.IsInteger(), "IsInteger")
			assert.Equal(t, test.gaussianInt, v.IsGaussianInteger(), "IsGaussianInteger")
			assert.Equal(t, test.zero, v.IsZero(), "IsZero")
			assert.Equal(t, test.one, v.IsOne(), "IsOne")
			assert.Equal(t, test.positive, v.IsPositive(), "IsPositive")
			assert.Equal(t, test.negative, v.IsNegative(), "IsNegative")
		})
	}
}

func TestProjections(t *testing.T) {
	v := r(3, 4, -5, 6)
	assert.Equal(t, "3,4,0,1", v.Real().Canonical())
	assert.Equal(t, "-5,6,0,1", v.Imag().Canonical())
	assert.Equal(t, "3/4", v.RealRat().RatString())
	assert.Equal(t, "-5/6", v.ImagRat().RatString())

	a := v.A()
	a.SetInt64(99)
	assert.Equal(t, "3,4,-5,6", v.Canonical(), "accessors return copies")
}

func TestNarrowing(t *testing.T) {
	z, err := r(3, 1, -2, 1).Integer()
	require.NoError(t, err)
	assert.True(t, z.Equal(NewInteger64(3, -2)))

	_, err = r(3, 2, 0, 1).Integer()
	assert.ErrorIs(t, err, ErrNarrowing)

	n, err := r(-7, 1, 0, 1).Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), n.Int64())

	_, err = r(7, 1, 1, 1).Int()
	assert.ErrorIs(t, err, ErrNarrowing)

	q, err := r(7, 3, 0, 1).Rat()
	require.NoError(t, err)
	assert.Equal(t, "7/3", q.RatString())

	_, err = I().Rat()
	assert.ErrorIs(t, err, ErrNarrowing)
}

func TestSliceConversion(t *testing.T) {
	v, err := FromSlice([]*big.Int{big.NewInt(2), big.NewInt(4), big.NewInt(3), big.NewInt(9)})
	require.NoError(t, err)
	assert.Equal(t, "1,2,1,3", v.Canonical())

	got := make([]int64, 0, 4)
	for _, n := range v.Slice() {
		got = append(got, n.Int64())
	}
	if diff := cmp.Diff([]int64{1, 2, 1, 3}, got); diff != "" {
		t.Errorf("Slice() mismatch (-want +got):\n%s", diff)
	}

	_, err = FromSlice([]*big.Int{big.NewInt(1), big.NewInt(2)})
	assert.ErrorIs(t, err, ErrArgument)
}

func TestOrdering(t *testing.T) {
	values := []Rational{r(1, 1, 1, 1), r(-1, 2, 0, 1), r(1, 1, -1, 1), r(1, 3, 0, 1), r(1, 1, 0, 1)}
	Sort(values)

	got := make([]string, len(values))
	for i, v := range values {
		got[i] = v.Canonical()
	}
	want := []string{"-1,2,0,1", "1,3,0,1", "1,1,-1,1", "1,1,0,1", "1,1,1,1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, r(1, 3, 0, 1).Less(r(1, 2, 0, 1)))
	assert.Equal(t, 0, r(2, 4, 0, 1).Cmp(r(1, 2, 0, 1)))

	c, err := r(1, 3, 0, 1).CmpReal(r(1, 2, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = I().CmpReal(One())
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0,1,0,1"},
		{0.5, "1,2,0,1"},
		{0.75, "3,4,0,1"},
		{-2.5, "-5,2,0,1"},
		{0.1, "1,10,0,1"},
		{1.0 / 3.0, "1,3,0,1"},
		{-22.0 / 7.0, "-22,7,0,1"},
		{1e6, "1000000,1,0,1"},
	}

	for _, test := range tests {
		result, err := FromFloat64(test.input)
		require.NoError(t, err)
		if result.Canonical() != test.expected {
			t.Errorf("FromFloat64(%v) = %s, want %s", test.input, result, test.expected)
		}
	}

	_, err := FromFloat64(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = FromFloat64(math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestFromBigRat(t *testing.T) {
	v := FromBigRat(big.NewRat(6, 8), nil)
	assert.Equal(t, "3,4,0,1", v.Canonical())

	v = FromBigRat(nil, big.NewRat(-1, 3))
	assert.Equal(t, "0,1,-1,3", v.Canonical())
}

func TestUnsupported(t *testing.T) {
	v := r(3, 1, 4, 1)

	_, err := v.Magnitude()
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Phase()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, _, err = v.Polar()
	assert.ErrorIs(t, err, ErrUnsupported)

	f, err := r(3, 4, 0, 1).Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.75, f)

	_, err = r(1, 3, 0, 1).Float64()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = v.Float64()
	assert.ErrorIs(t, err, ErrNarrowing)
}
