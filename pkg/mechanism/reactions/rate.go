package reactions

import (
	"fmt"

	"github.com/ctessum/unit"
)

// BoltzmannConstant is k_B in J K-1.
const BoltzmannConstant = 1.380649e-23

var (
	joule          = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2}
	joulePerKelvin = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, unit.TemperatureDim: -1}
	temperature    = unit.Dimensions{unit.TemperatureDim: 1}
)

// CFromEa converts an activation energy in J to the Arrhenius C parameter
// in K, C = -Ea / k_B.
func CFromEa(ea float64) (float64, error) {
	c := unit.New(ea, joule)
	c.Negate()
	c.Div(unit.New(BoltzmannConstant, joulePerKelvin))
	if !c.Dimensions().Matches(temperature) {
		return 0, fmt.Errorf("activation energy conversion produced %v, want temperature", c.Dimensions())
	}
	return c.Value(), nil
}

// EaFromC is the inverse of CFromEa.
func EaFromC(c float64) float64 {
	return -c * BoltzmannConstant
}
