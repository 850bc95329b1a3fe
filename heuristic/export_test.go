package heuristic

// Roulette exposes the roulette-wheel draw used by AntColony.
func Roulette(probs []float64, r float64) int { return roulette(probs, r) }

// LevySigma exposes Mantegna's σ_u for a stability index beta.
func LevySigma(beta float64) float64 { return newLevy(beta).sigmaU }

// LevyStep draws one Lévy step.
func LevyStep(beta float64, src Source) float64 { return newLevy(beta).step(src) }
