package curve

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/curvebook/go-ecc/pkg/field"
)

// The conformance curve y² = x³ + 7 over F223. Small enough that every vector
// below can be checked by hand, and its subgroups have single-digit orders.
func f223(v int64) field.Int {
	return field.NewInt64(v, 223)
}

func point223(t *testing.T, x, y int64) Point[field.Int] {
	t.Helper()
	p, err := NewPoint(f223(x), f223(y), f223(0), f223(7))
	require.NoError(t, err, "(%d, %d) should be on the curve", x, y)
	return p
}

func TestNewPointValidation(t *testing.T) {
	valid := [][2]int64{{192, 105}, {17, 56}, {1, 193}, {15, 86}, {47, 71}, {6, 0}}
	for _, c := range valid {
		if _, err := NewPoint(f223(c[0]), f223(c[1]), f223(0), f223(7)); err != nil {
			t.Errorf("NewPoint(%d, %d) = %v, want on-curve", c[0], c[1], err)
		}
	}

	invalid := [][2]int64{{200, 119}, {42, 99}}
	for _, c := range invalid {
		_, err := NewPoint(f223(c[0]), f223(c[1]), f223(0), f223(7))
		require.ErrorIs(t, err, ErrPointNotOnCurve, "(%d, %d)", c[0], c[1])
	}
}

func TestInfinityIdentity(t *testing.T) {
	p := point223(t, 192, 105)
	inf := Infinity(f223(0), f223(7))

	require.True(t, inf.IsInfinity())
	require.False(t, p.IsInfinity())
	require.True(t, p.Add(inf).Equal(p), "p + 0 = p")
	require.True(t, inf.Add(p).Equal(p), "0 + p = p")
	require.True(t, inf.Add(inf).Equal(inf), "0 + 0 = 0")
}

func TestAddInversePair(t *testing.T) {
	p := point223(t, 192, 105)
	q := point223(t, 192, 118) // 118 = -105 mod 223
	inf := Infinity(f223(0), f223(7))

	if got := p.Add(q); !got.Equal(inf) {
		t.Errorf("(192,105) + (192,118) = %s, want infinity", got)
	}
	if got := p.Add(p.Neg()); !got.Equal(inf) {
		t.Errorf("p + (-p) = %s, want infinity", got)
	}

	// y = 0 makes the point its own inverse: the doubling tangent is
	// vertical.
	half := point223(t, 6, 0)
	if got := half.Add(half); !got.Equal(inf) {
		t.Errorf("(6,0) + (6,0) = %s, want infinity", got)
	}
}

func TestAddVectors(t *testing.T) {
	cases := []struct {
		name       string
		p, q, want [2]int64
	}{
		{"chord", [2]int64{192, 105}, [2]int64{17, 56}, [2]int64{170, 142}},
		{"chord 2", [2]int64{170, 142}, [2]int64{60, 139}, [2]int64{220, 181}},
		{"doubling", [2]int64{47, 71}, [2]int64{47, 71}, [2]int64{36, 111}},
		{"doubling 2", [2]int64{192, 105}, [2]int64{192, 105}, [2]int64{49, 71}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := point223(t, tc.p[0], tc.p[1])
			q := point223(t, tc.q[0], tc.q[1])
			want := point223(t, tc.want[0], tc.want[1])

			if got := p.Add(q); !got.Equal(want) {
				t.Errorf("%s + %s = %s, want %s", p, q, got, want)
			}
			if got := q.Add(p); !got.Equal(want) {
				t.Errorf("%s + %s = %s, want %s (commuted)", q, p, got, want)
			}
		})
	}
}

func TestScalarMultVectors(t *testing.T) {
	// (47, 71) generates a subgroup of order 21.
	base := point223(t, 47, 71)
	cases := []struct {
		k    int64
		want [2]int64
	}{
		{1, [2]int64{47, 71}},
		{2, [2]int64{36, 111}},
		{3, [2]int64{15, 137}},
		{4, [2]int64{194, 51}},
		{5, [2]int64{126, 96}},
		{6, [2]int64{139, 137}},
		{7, [2]int64{92, 47}},
		{8, [2]int64{116, 55}},
		{20, [2]int64{47, 152}},
		{22, [2]int64{47, 71}},
	}

	for _, tc := range cases {
		want := point223(t, tc.want[0], tc.want[1])
		if got := base.ScalarMult(big.NewInt(tc.k)); !got.Equal(want) {
			t.Errorf("%d * %s = %s, want %s", tc.k, base, got, want)
		}
	}

	inf := Infinity(f223(0), f223(7))
	for _, k := range []int64{0, 21, 42} {
		if got := base.ScalarMult(big.NewInt(k)); !got.Equal(inf) {
			t.Errorf("%d * %s = %s, want infinity", k, base, got)
		}
	}
	if got := inf.ScalarMult(big.NewInt(12)); !got.Equal(inf) {
		t.Errorf("12 * infinity = %s, want infinity", got)
	}
}

func TestGeneratorSubgroup(t *testing.T) {
	// (15, 86) has order 7; its multiples must cycle through exactly these
	// points and return to infinity.
	g := point223(t, 15, 86)
	want := []Point[field.Int]{
		point223(t, 15, 86),
		point223(t, 139, 86),
		point223(t, 69, 137),
		point223(t, 69, 86),
		point223(t, 139, 137),
		point223(t, 15, 137),
		Infinity(f223(0), f223(7)),
	}

	got := make([]Point[field.Int], 0, len(want))
	acc := Infinity(f223(0), f223(7))
	for range want {
		acc = acc.Add(g)
		got = append(got, acc)
	}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("subgroup walk diverges at step %d:\ngot %swant %s",
				i+1, spew.Sdump(got), spew.Sdump(want))
		}
		if !g.ScalarMult(big.NewInt(int64(i + 1))).Equal(want[i]) {
			t.Errorf("ScalarMult(%d) disagrees with repeated addition", i+1)
		}
	}
}

func TestMismatchedCurvePanics(t *testing.T) {
	p := point223(t, 192, 105)
	other := Infinity(f223(5), f223(7))
	otherField := Infinity(field.NewInt64(0, 227), field.NewInt64(7, 227))

	require.PanicsWithValue(t, ErrMismatchedCurve, func() { p.Add(other) })
	require.PanicsWithValue(t, ErrMismatchedCurve, func() { p.Add(otherField) })
	require.False(t, p.Equal(other), "Equal never panics across curves")
}

func TestNegativeScalarPanics(t *testing.T) {
	p := point223(t, 47, 71)
	require.PanicsWithValue(t, ErrNegativeScalar, func() { p.ScalarMult(big.NewInt(-2)) })

	// -k*p is spelled as |k| * (-p).
	want := point223(t, 36, 111).Neg()
	if got := p.Neg().ScalarMult(big.NewInt(2)); !got.Equal(want) {
		t.Errorf("2 * (-p) = %s, want %s", got, want)
	}
}

func TestCoordinates(t *testing.T) {
	p := point223(t, 15, 86)
	x, y, ok := p.Coordinates()
	require.True(t, ok)
	require.True(t, x.Equal(f223(15)))
	require.True(t, y.Equal(f223(86)))
	require.True(t, p.A().Equal(f223(0)))
	require.True(t, p.B().Equal(f223(7)))

	_, _, ok = Infinity(f223(0), f223(7)).Coordinates()
	require.False(t, ok, "infinity has no coordinates")

	require.Equal(t, "(15 mod 223, 86 mod 223)", p.String())
	require.Equal(t, "infinity", Infinity(f223(0), f223(7)).String())
}

func TestPointsAtX(t *testing.T) {
	cases := []struct {
		x    int64
		want [][2]int64
	}{
		{4, nil},                              // 4³+7 = 71, a non-residue
		{6, [][2]int64{{6, 0}}},               // 6³+7 ≡ 0
		{15, [][2]int64{{15, 86}, {15, 137}}}, // canonical root first
		{192, [][2]int64{{192, 105}, {192, 118}}},
	}

	for _, tc := range cases {
		got := PointsAtX(f223(tc.x), f223(0), f223(7))
		if len(got) != len(tc.want) {
			t.Fatalf("PointsAtX(%d) returned %d points, want %d:\n%s",
				tc.x, len(got), len(tc.want), spew.Sdump(got))
		}
		for i, w := range tc.want {
			if !got[i].Equal(point223(t, w[0], w[1])) {
				t.Errorf("PointsAtX(%d)[%d] = %s, want (%d, %d)", tc.x, i, got[i], w[0], w[1])
			}
		}
	}
}

// somePoint223 deterministically maps seed to a point on the F223 curve by
// scanning x-coordinates upward until one has points.
func somePoint223(seed int64) Point[field.Int] {
	for x := seed % 223; ; x++ {
		pts := PointsAtX(f223(x), f223(0), f223(7))
		if len(pts) > 0 {
			return pts[int(seed)%len(pts)]
		}
	}
}

func TestGroupLawProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)
	seeds := gen.Int64Range(0, 1<<30)

	properties.Property("sum stays on the curve", prop.ForAll(
		func(i, j int64) bool {
			sum := somePoint223(i).Add(somePoint223(j))
			if sum.IsInfinity() {
				return true
			}
			x, y, _ := sum.Coordinates()
			_, err := NewPoint(x, y, f223(0), f223(7))
			return err == nil
		},
		seeds, seeds,
	))

	properties.Property("addition commutes", prop.ForAll(
		func(i, j int64) bool {
			p, q := somePoint223(i), somePoint223(j)
			return p.Add(q).Equal(q.Add(p))
		},
		seeds, seeds,
	))

	properties.Property("addition associates", prop.ForAll(
		func(i, j, k int64) bool {
			p, q, r := somePoint223(i), somePoint223(j), somePoint223(k)
			return p.Add(q).Add(r).Equal(p.Add(q.Add(r)))
		},
		seeds, seeds, seeds,
	))

	properties.Property("p + (-p) is the identity", prop.ForAll(
		func(i int64) bool {
			p := somePoint223(i)
			return p.Add(p.Neg()).IsInfinity()
		},
		seeds,
	))

	properties.Property("(j+k)p = jp + kp", prop.ForAll(
		func(i, j, k int64) bool {
			p := somePoint223(i)
			bj, bk := big.NewInt(j), big.NewInt(k)
			lhs := p.ScalarMult(new(big.Int).Add(bj, bk))
			rhs := p.ScalarMult(bj).Add(p.ScalarMult(bk))
			return lhs.Equal(rhs)
		},
		seeds, gen.Int64Range(0, 500), gen.Int64Range(0, 500),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
