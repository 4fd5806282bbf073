package predictor

import (
	"math/rand"

	"go.uber.org/fx"
)

// Source supplies the randomness behind the confidence band. It is an
// interface so tests can substitute a fixed value; the live source does
// not need to be cryptographically secure.
type Source interface {
	Float64() float64
}

type systemSource struct{}

func (systemSource) Float64() float64 {
	return rand.Float64()
}

func NewSource() Source {
	return systemSource{}
}

var Module = fx.Provide(NewSource)
