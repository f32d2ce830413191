package bal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hazmath/bushfire"
	"github.com/hazmath/bushfire/helpers/bal"
	"github.com/hazmath/bushfire/veg"
)

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		flux float64
		want bal.Level
	}{
		{0, bal.Level12_5},
		{12.5, bal.Level12_5},
		{12.500001, bal.Level19},
		{19, bal.Level19},
		{25, bal.Level29},
		{29, bal.Level29},
		{40, bal.Level40},
		{40.1, bal.LevelFZ},
		{1e4, bal.LevelFZ},
	} {
		if got := bal.Classify(test.flux); got != test.want {
			t.Errorf("Classify(%g) = %v. want %v", test.flux, got, test.want)
		}
	}
}

func TestLevelStringsAndThresholds(t *testing.T) {
	want := map[bal.Level]string{
		bal.Level12_5: "BAL-12.5",
		bal.Level19:   "BAL-19",
		bal.Level29:   "BAL-29",
		bal.Level40:   "BAL-40",
		bal.LevelFZ:   "BAL-FZ",
	}
	prev := math.Inf(-1)
	for _, l := range bal.Levels {
		if l.String() != want[l] {
			t.Errorf("level %d string %q. want %q", int(l), l.String(), want[l])
		}
		if l.Threshold() <= prev {
			t.Errorf("thresholds not increasing at %v: %g after %g", l, l.Threshold(), prev)
		}
		prev = l.Threshold()
	}
	if !math.IsInf(bal.LevelFZ.Threshold(), 1) {
		t.Errorf("flame zone threshold %g. want +Inf", bal.LevelFZ.Threshold())
	}
}

func TestAt(t *testing.T) {
	m, err := bushfire.NewModel(veg.Forest(), bushfire.Site{FDI: 50})
	if err != nil {
		t.Fatal(err)
	}
	// Close in the exposure is flame zone; far out it drops bands.
	near, err := bal.At(m, 8)
	if err != nil {
		t.Fatal(err)
	}
	far, err := bal.At(m, 120)
	if err != nil {
		t.Fatal(err)
	}
	if near <= far {
		t.Errorf("band did not relax with distance: %v at 8 m, %v at 120 m", near, far)
	}
	if far != bal.Level12_5 {
		t.Errorf("band at 120 m = %v. want %v", far, bal.Level12_5)
	}
	if _, err := bal.At(m, 2); !errors.Is(err, bushfire.ErrFlameEnvelope) {
		t.Errorf("inside envelope: expected ErrFlameEnvelope, got %v", err)
	}
	// The band boundary agrees with the minimum separation search.
	d19, err := m.MinimumSeparation(19)
	if err != nil {
		t.Fatal(err)
	}
	atBoundary, err := bal.At(m, d19)
	if err != nil {
		t.Fatal(err)
	}
	if atBoundary > bal.Level19 {
		t.Errorf("band %v at the BAL-19 separation %g m. want at most %v", atBoundary, d19, bal.Level19)
	}
}
