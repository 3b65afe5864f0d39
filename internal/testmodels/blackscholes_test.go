package testmodels

import (
	"math"
	"testing"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
)

func TestBlackScholesModelZeroVolIsDeterministicForward(t *testing.T) {
	m := NewBlackScholesModel[mcmodel.Real](100, 0)
	m.Init([]mcmodel.Time{1.0})

	path := make(mcmodel.Path[mcmodel.Real], 1)
	m.GeneratePath([]float64{2.5}, path) // shock should have no effect at vol=0

	if math.Abs(path[0].Spot.Value()-100) > 1e-9 {
		t.Fatalf("spot at vol=0 = %v, want 100 regardless of shock", path[0].Spot.Value())
	}
}

func TestBlackScholesModelParametersOrder(t *testing.T) {
	m := NewBlackScholesModel[mcmodel.Real](100, 0.2)
	m.Init([]mcmodel.Time{1.0})
	params := m.Parameters()
	if len(params) != 2 {
		t.Fatalf("Parameters() len = %d, want 2", len(params))
	}
	if params[0].Value() != 100 || params[1].Value() != 0.2 {
		t.Fatalf("Parameters() = %v, want [100, 0.2]", params)
	}
}

func TestBlackScholesModelCloneIsIndependent(t *testing.T) {
	m := NewBlackScholesModel[mcmodel.Real](100, 0.2)
	clone := m.Clone().(*BlackScholesModel[mcmodel.Real])
	clone.Init([]mcmodel.Time{1.0})

	if clone.SimDim() != 1 {
		t.Fatalf("clone.SimDim() = %d, want 1", clone.SimDim())
	}
}

func TestBlackScholesModelMultiStepTimeline(t *testing.T) {
	m := NewBlackScholesModel[mcmodel.Real](100, 0.2)
	timeline := []mcmodel.Time{0.25, 0.5, 1.0}
	m.Init(timeline)

	if m.SimDim() != len(timeline) {
		t.Fatalf("SimDim() = %d, want %d", m.SimDim(), len(timeline))
	}

	path := make(mcmodel.Path[mcmodel.Real], len(timeline))
	m.GeneratePath(make([]float64, len(timeline)), path)

	for i, s := range path {
		if s.Spot.Value() <= 0 {
			t.Fatalf("path[%d].Spot = %v, want positive", i, s.Spot.Value())
		}
	}
}
