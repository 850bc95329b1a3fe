package heuristic

import "math"

// levy draws heavy-tailed steps with Mantegna's algorithm:
//
//	step = u / |v|^(1/β),  u ~ N(0, σ_u²),  v ~ N(0, 1)
//	σ_u  = [Γ(1+β)·sin(πβ/2) / (Γ((1+β)/2)·β·2^((β−1)/2))]^(1/β)
type levy struct {
	beta   float64
	sigmaU float64
}

func newLevy(beta float64) levy {
	num := math.Gamma(1+beta) * math.Sin(math.Pi*beta/2)
	den := math.Gamma((1+beta)/2) * beta * math.Pow(2, (beta-1)/2)

	return levy{beta: beta, sigmaU: math.Pow(num/den, 1/beta)}
}

// step returns one Lévy-distributed draw. v is redrawn while it is exactly 0.
func (l levy) step(src Source) float64 {
	u := src.NormFloat64() * l.sigmaU
	v := src.NormFloat64()
	for v == 0 {
		v = src.NormFloat64()
	}

	return u / math.Pow(math.Abs(v), 1/l.beta)
}
