// Package bal grades radiant heat exposure into the bushfire attack level
// construction bands used by Australian building standards.
package bal

import (
	"math"

	"github.com/hazmath/bushfire"
)

// Level is a bushfire attack level construction band.
type Level int

// Attack level bands in order of increasing severity. Each band is named
// for its design heat flux in kW/m²; LevelFZ is the flame zone with no
// upper design limit.
const (
	Level12_5 Level = iota
	Level19
	Level29
	Level40
	LevelFZ
)

// Levels lists the bands in increasing severity.
var Levels = []Level{Level12_5, Level19, Level29, Level40, LevelFZ}

// Threshold returns the band's design heat flux in kW/m², the largest
// exposure the band covers. The flame zone has no upper limit and returns
// +Inf.
func (l Level) Threshold() float64 {
	switch l {
	case Level12_5:
		return 12.5
	case Level19:
		return 19
	case Level29:
		return 29
	case Level40:
		return 40
	}
	return math.Inf(1)
}

func (l Level) String() string {
	switch l {
	case Level12_5:
		return "BAL-12.5"
	case Level19:
		return "BAL-19"
	case Level29:
		return "BAL-29"
	case Level40:
		return "BAL-40"
	case LevelFZ:
		return "BAL-FZ"
	}
	return "BAL-?"
}

// Classify returns the band covering a radiant heat flux in kW/m². Band
// thresholds are inclusive: a flux exactly at a design limit stays in that
// band.
func Classify(flux float64) Level {
	for _, l := range Levels[:len(Levels)-1] {
		if flux <= l.Threshold() {
			return l
		}
	}
	return LevelFZ
}

// At returns the attack level band for a receiver at the given separation
// distance in metres from the model's flame front.
func At(m *bushfire.Model, separation float64) (Level, error) {
	flux, err := m.RadiantHeatFlux(separation)
	if err != nil {
		return LevelFZ, err
	}
	return Classify(flux), nil
}
