package bushfire_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/hazmath/bushfire"
	"github.com/hazmath/bushfire/veg"
)

// countingVeg wraps a vegetation class and counts formula evaluations.
type countingVeg struct {
	fuel        veg.ForestWoodland
	spreadCalls int
	flameCalls  int
}

func (c *countingVeg) RateOfSpread(site bushfire.Site) float64 {
	c.spreadCalls++
	return c.fuel.RateOfSpread(site)
}

func (c *countingVeg) FlameLength(site bushfire.Site, rateOfSpread float64) float64 {
	c.flameCalls++
	return c.fuel.FlameLength(site, rateOfSpread)
}

func TestForestFlameGeometry(t *testing.T) {
	m, err := bushfire.NewModel(veg.Forest(), bushfire.Site{FDI: 50})
	if err != nil {
		t.Fatal(err)
	}
	// Flat site at FDI 50 gives round figures in double precision.
	if got := m.RateOfSpread(); got != 1.5 {
		t.Errorf("rate of spread mismatch. got %g. want 1.5", got)
	}
	if got := m.FlameLength(); got != 13.95 {
		t.Errorf("flame length mismatch. got %g. want 13.95", got)
	}
}

func TestWoodlandFlameGeometry(t *testing.T) {
	site := bushfire.Site{FDI: 50}
	forest, err := bushfire.NewModel(veg.Forest(), site)
	if err != nil {
		t.Fatal(err)
	}
	woodland, err := bushfire.NewModel(veg.Woodland(), site)
	if err != nil {
		t.Fatal(err)
	}
	if woodland.FlameLength() <= 0 {
		t.Fatal("woodland flame length not positive")
	}
	if woodland.FlameLength() >= forest.FlameLength() {
		t.Errorf("woodland flame %g m not shorter than forest flame %g m",
			woodland.FlameLength(), forest.FlameLength())
	}
}

func TestNewModelValidation(t *testing.T) {
	for _, test := range []struct {
		name string
		site bushfire.Site
	}{
		{"negativeSlope", bushfire.Site{Slope: -0.1, FDI: 50}},
		{"slopeAtPi", bushfire.Site{Slope: math.Pi, FDI: 50}},
		{"slopeNaN", bushfire.Site{Slope: math.NaN(), FDI: 50}},
		{"slopeInf", bushfire.Site{Slope: math.Inf(1), FDI: 50}},
		{"negativeHeight", bushfire.Site{ReceiverHeight: -1, FDI: 50}},
		{"heightNaN", bushfire.Site{ReceiverHeight: math.NaN(), FDI: 50}},
		{"fdiNaN", bushfire.Site{FDI: math.NaN()}},
		{"fdiInf", bushfire.Site{FDI: math.Inf(-1)}},
	} {
		_, err := bushfire.NewModel(veg.Forest(), test.site)
		if !errors.Is(err, bushfire.ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", test.name, err)
		}
	}
	if _, err := bushfire.NewModel(nil, bushfire.Site{FDI: 50}); !errors.Is(err, bushfire.ErrInvalidParameter) {
		t.Errorf("nil vegetation: expected ErrInvalidParameter, got %v", err)
	}
	// Steep slopes below pi and negative indices are inside the domain.
	for _, site := range []bushfire.Site{
		{Slope: 3.14, FDI: 50},
		{FDI: -10},
		{ReceiverHeight: 50, FDI: 0},
	} {
		if _, err := bushfire.NewModel(veg.Forest(), site); err != nil {
			t.Errorf("site %+v: unexpected error %v", site, err)
		}
	}
}

func TestFlameGeometryComputedOnce(t *testing.T) {
	probe := &countingVeg{fuel: veg.Forest()}
	m, err := bushfire.NewModel(probe, bushfire.Site{FDI: 50})
	if err != nil {
		t.Fatal(err)
	}
	m.FlameLength()
	m.FlameLength()
	m.RateOfSpread()
	if _, _, err := m.ViewFactor(20); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RadiantHeatFlux(20); err != nil {
		t.Fatal(err)
	}
	if _, err := m.MinimumSeparation(29); err != nil {
		t.Fatal(err)
	}
	if probe.spreadCalls != 1 {
		t.Errorf("rate of spread evaluated %d times. want 1", probe.spreadCalls)
	}
	if probe.flameCalls != 1 {
		t.Errorf("flame length evaluated %d times. want 1", probe.flameCalls)
	}
}

func TestFlameGeometryComputedOnceConcurrent(t *testing.T) {
	probe := &countingVeg{fuel: veg.Forest()}
	m, err := bushfire.NewModel(probe, bushfire.Site{FDI: 50})
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.FlameLength()
			m.RadiantHeatFlux(25)
		}()
	}
	wg.Wait()
	if probe.spreadCalls != 1 || probe.flameCalls != 1 {
		t.Errorf("formulas evaluated %d/%d times under concurrency. want 1/1",
			probe.spreadCalls, probe.flameCalls)
	}
}

func TestModelDeterminism(t *testing.T) {
	site := bushfire.Site{Slope: bushfire.DtoR(5), ReceiverHeight: 2, FDI: 80}
	a, err := bushfire.NewModel(veg.Forest(), site)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bushfire.NewModel(veg.Forest(), site)
	if err != nil {
		t.Fatal(err)
	}
	fa, err := a.RadiantHeatFlux(30)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := b.RadiantHeatFlux(30)
	if err != nil {
		t.Fatal(err)
	}
	if fa != fb {
		t.Errorf("flux not reproducible across identical models: %g != %g", fa, fb)
	}
	da, err := a.MinimumSeparation(19)
	if err != nil {
		t.Fatal(err)
	}
	db, err := b.MinimumSeparation(19)
	if err != nil {
		t.Fatal(err)
	}
	if da != db {
		t.Errorf("separation not reproducible across identical models: %g != %g", da, db)
	}
}

func TestModelSite(t *testing.T) {
	site := bushfire.Site{Slope: 0.2, ReceiverHeight: 3, FDI: 64}
	m, err := bushfire.NewModel(veg.Woodland(), site)
	if err != nil {
		t.Fatal(err)
	}
	if m.Site() != site {
		t.Errorf("site accessor mismatch. got %+v. want %+v", m.Site(), site)
	}
}
