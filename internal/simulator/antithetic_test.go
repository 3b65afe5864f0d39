package simulator

import (
	"testing"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/tape"
	"github.com/wyfcoding/mcaad/internal/testmodels"
)

// identityModel and identityProduct let a test observe the raw Gaussian
// draw a path consumed, by passing it straight through as the path's
// spot and the product's payoff, with no further transformation.
type identityModel struct{}

func (identityModel) Init([]mcmodel.Time) {}
func (identityModel) SimDim() int         { return 1 }
func (identityModel) GeneratePath(g []float64, path mcmodel.Path[mcmodel.Real]) {
	path[0].Spot = mcmodel.Real(g[0])
}
func (identityModel) Parameters() []mcmodel.Real            { return nil }
func (identityModel) PutOnTape(t *tape.Tape)                {}
func (m identityModel) Clone() mcmodel.Model[mcmodel.Real]  { return m }

type identityProduct struct{}

func (identityProduct) Timeline() []mcmodel.Time { return []mcmodel.Time{1.0} }
func (identityProduct) Payoff(path mcmodel.Path[mcmodel.Real]) mcmodel.Real {
	return path[0].Spot
}
func (p identityProduct) Clone() mcmodel.Product[mcmodel.Real] { return p }

func TestAntitheticPairsMirrorEachOther(t *testing.T) {
	r := testmodels.NewGaussianRNG(7, 9)
	res := MCSimul(identityProduct{}, identityModel{}, r, Options{NPath: 6, Antithetic: true})

	for i := 0; i < 6; i += 2 {
		if res[i] != -res[i+1] {
			t.Fatalf("pair (%d,%d) = (%v,%v), want mirror images", i, i+1, res[i], res[i+1])
		}
	}
}

func TestAntitheticOddPathCountDrawsUnpairedPrimaryLast(t *testing.T) {
	anti := MCSimul(identityProduct{}, identityModel{}, testmodels.NewGaussianRNG(7, 9), Options{NPath: 5, Antithetic: true})
	plain := MCSimul(identityProduct{}, identityModel{}, testmodels.NewGaussianRNG(7, 9), Options{NPath: 3, Antithetic: false})

	// Under antithetic sampling with an odd path count, real RNG draws
	// happen only at even path indices (0, 2, 4): each is a fresh
	// primary draw, identical to what the same-seeded plain RNG would
	// produce when called the same number of times.
	for i, want := range plain {
		got := anti[2*i]
		if got != want {
			t.Fatalf("antithetic primary draw at path %d = %v, want %v (matching plain draw %d)", 2*i, got, want, i)
		}
	}
	if anti[1] != -anti[0] || anti[3] != -anti[2] {
		t.Fatal("antithetic mirror draws did not negate their primary")
	}
}
