package erfinv

import "math"

// Eval evaluates erfinv(y) under the given scheme.
func Eval(y float32, scheme Scheme) float32 {
	if scheme == PreciseApprox {
		return Precise(y)
	}
	return Fast(y)
}

// Fast evaluates erfinv(y) with the 2-branch rational expansion.
// Central region |y| <= 0.7 works on z = y^2; the tail works on
// z = sqrt(-ln((1-|y|)/2)).
func Fast(y float32) float32 {
	yAbs := abs32(y)
	if yAbs > 1 {
		return float32(math.NaN())
	}
	if yAbs == 1 {
		return copysign32(float32(math.Inf(1)), y)
	}

	if yAbs <= 0.7 {
		z := y * y
		num := horner(fastTable.A[:], 4, z)
		den := horner(fastTable.B[:], 4, z)*z + 1
		return y * num / den
	}
	z := sqrt32(-log32((1 - yAbs) / 2))
	num := horner(fastTable.C[:], 4, z)
	den := horner(fastTable.D[:], 2, z)*z + 1
	return copysign32(num, y) / den
}

// Precise evaluates erfinv(y) with the 7-region rational approximation.
func Precise(y float32) float32 {
	yAbs := abs32(y)
	if yAbs > 1 {
		return float32(math.NaN())
	}
	if yAbs == 1 {
		return copysign32(float32(math.Inf(1)), y)
	}
	if yAbs == 0 {
		return y // preserves the sign of zero
	}

	p := yAbs
	q := 1 - p

	var r float32
	switch {
	case p <= 0.5:
		g := p * (p + 10)
		r = g*preciseTable.Y[0] + g*ratio(0, p)
	case q >= 0.25:
		g := sqrt32(-2 * log32(q))
		xs := q - 0.25
		r = g / (preciseTable.Y[1] + ratio(1, xs))
	default:
		x := sqrt32(-log32(q))
		k, off := tailRegion(x)
		r = preciseTable.Y[k]*x + ratio(k, x-off)*x
	}
	return copysign32(r, y)
}

// tailRegion maps x = sqrt(-ln q) to its coefficient row and recentering
// offset. Regions partition [1.1625.., +inf) exhaustively.
func tailRegion(x float32) (k int, off float32) {
	switch {
	case x < 3:
		return 2, 1.125
	case x < 6:
		return 3, 3
	case x < 18:
		return 4, 6
	case x < 44:
		return 5, 18
	default:
		return 6, 44
	}
}

// ratio evaluates P_k(x) / Q_k(x) at the region's stated degrees.
func ratio(k int, x float32) float32 {
	return horner(preciseTable.P[k][:], pDegree[k], x) /
		horner(preciseTable.Q[k][:], qDegree[k], x)
}

// horner evaluates the degree-(n-1) polynomial with coefficients c[0..n-1]
// (constant term first) at x, seeding the accumulator with the
// highest-degree coefficient.
func horner(c []float32, n int, x float32) float32 {
	r := c[n-1]
	for i := n - 2; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

func copysign32(x, sign float32) float32 {
	const signMask = 1 << 31
	return math.Float32frombits(math.Float32bits(x)&^signMask | math.Float32bits(sign)&signMask)
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func log32(x float32) float32 {
	return float32(math.Log(float64(x)))
}
