package bushfire

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// transmittanceCoeffs is the empirical atmospheric attenuation surface of
// the methodology. Row n holds the regression coefficients of the path
// length power pⁿ against the regressors [1, ambient temperature, flame
// temperature, relative humidity].
var transmittanceCoeffs = mat.NewDense(5, 4, []float64{
	1.486, -2.003e-3, 4.68e-5, -6.052e-2,
	1.225e-2, -5.900e-5, 1.66e-6, -1.759e-3,
	-1.489e-4, 6.893e-7, -1.922e-8, 2.092e-5,
	8.381e-7, -3.283e-9, 1.051e-10, -1.166e-7,
	-1.685e-9, 7.637e-12, -2.085e-13, 2.350e-10,
})

// TransmittanceFactor returns the atmospheric transmittance of flame
// radiation over the path implied by a flame angle in radians and a
// separation distance in metres. The transmittance is a degree four
// polynomial in the path length whose coefficients come from evaluating
// the attenuation surface at the model's ambient temperature, flame
// temperature and relative humidity.
//
// TransmittanceFactor returns ErrFlameEnvelope if the implied path length
// is not positive.
func (m *Model) TransmittanceFactor(angle, separation float64) (float64, error) {
	if !finite(angle) || !finite(separation) {
		return 0, fmt.Errorf("angle %g rad, separation %g m: %w", angle, separation, ErrInvalidParameter)
	}
	p := m.pathLength(angle, separation)
	if p <= 0 {
		return 0, fmt.Errorf("path length %g m at angle %g rad: %w", p, angle, ErrFlameEnvelope)
	}
	var coeffs mat.VecDense
	coeffs.MulVec(transmittanceCoeffs, mat.NewVecDense(4, []float64{
		1, m.AmbientTemperature, m.FlameTemperature, m.RelativeHumidity,
	}))
	tau := 0.0
	pn := 1.0
	for n := 0; n < coeffs.Len(); n++ {
		tau += coeffs.AtVec(n) * pn
		pn *= p
	}
	return tau, nil
}

// TransmittanceFactors evaluates TransmittanceFactor over paired angle and
// separation slices. It panics if the slices differ in length. The first
// failing pair aborts the batch and the returned error wraps its index.
func (m *Model) TransmittanceFactors(angles, separations []float64) ([]float64, error) {
	if len(angles) != len(separations) {
		panic("bushfire: angle and separation slice lengths differ")
	}
	taus := make([]float64, len(angles))
	var err error
	for i := range angles {
		taus[i], err = m.TransmittanceFactor(angles[i], separations[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return taus, nil
}
