package finance

import (
	"errors"
	"fmt"
	"math"

	"pv-econ/internal/model"
)

// ErrNoSolution is returned by CAPEX when the inversion is degenerate:
// the per-unit depreciation tax shield exactly cancels the unit capital
// outflow, so no finite capex reproduces the target LCOE.
var ErrNoSolution = errors.New("capex inversion has no solution: depreciation shield cancels the capital outflow")

// ConsistencyError reports a failed round-trip between the CAPEX inversion
// and the forward LCOE calculation. It is always a logic fault, never
// something to retry.
type ConsistencyError struct {
	Want float64 // target LCOE passed to the inversion
	Got  float64 // LCOE recomputed from the solved capex
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("capex inversion failed consistency check: target lcoe %.10f, recomputed %.10f", e.Want, e.Got)
}

// LCOE calculates the levelized cost of electricity, in currency/kWh,
// assuming a linear degradation rate.
//
// annualYield is the yearly energy yield of the system in kWh/kW/year,
// degradation excluded. Rates on econ are percentages, h.Degradation is a
// fraction (see model docs). The year-0 capex enters the numerator
// undiscounted; each year 1..T adds discounted after-tax OPEX, subtracts the
// straight-line depreciation tax shield while inside the depreciation window,
// and adds discounted degraded energy to the denominator.
//
// Degenerate numeric inputs that the horizon validation does not cover
// (annualYield = 0, Degradation = 1, DiscountRate = -100) propagate as
// IEEE-754 Inf/NaN rather than errors.
func LCOE(annualYield float64, econ model.EconomicParameters, h model.Horizon) (float64, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	// Annual tax depreciation under straight-line schedule.
	dep := econ.Capex / float64(h.DepreciationYears)

	num := econ.Capex
	den := 0.0
	for year := 1; year <= h.Years; year++ {
		y := float64(year)
		discount := math.Pow(1+econ.DiscountRate/100, y)

		num += econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OMEscalation/100, y) / discount
		if year <= h.DepreciationYears {
			num -= dep * econ.TaxRate / 100 / discount
		}
		den += annualYield * math.Pow(1-h.Degradation, y) / discount
	}
	return num / den, nil
}

// CAPEX solves the forward LCOE equation for the capital expenditure that
// reproduces targetLCOE, holding every other economic parameter fixed.
// econ.Capex itself is ignored as an input and never mutated.
//
// Capex appears linearly in the numerator (once as the raw outflow, once
// scaled by 1/Nd in the tax-shield term) and not at all in the denominator,
// so running the forward loop with a unit depreciation base yields
// LCOE = (capex + num1 + capex*num2) / den, which solves to
// capex = (target*den - num1) / (1 + num2).
//
// With check set, the solved capex is substituted back into a copy of econ,
// the forward calculation is re-run, and the result is compared to the
// target at 8 decimal places. A mismatch returns a *ConsistencyError
// carrying both values.
func CAPEX(annualYield float64, econ model.EconomicParameters, targetLCOE float64, h model.Horizon, check bool) (float64, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	unitDep := 1.0 / float64(h.DepreciationYears)

	num1 := 0.0 // opex-only numerator terms, capex-independent
	num2 := 0.0 // per-unit-capex depreciation shield (negative)
	den := 0.0
	for year := 1; year <= h.Years; year++ {
		y := float64(year)
		discount := math.Pow(1+econ.DiscountRate/100, y)

		num1 += econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OMEscalation/100, y) / discount
		if year <= h.DepreciationYears {
			num2 -= unitDep * econ.TaxRate / 100 / discount
		}
		den += annualYield * math.Pow(1-h.Degradation, y) / discount
	}

	if 1+num2 == 0 {
		return 0, ErrNoSolution
	}
	capex := (targetLCOE*den - num1) / (1 + num2)

	if check {
		if err := verifyRoundTrip(annualYield, econ, capex, targetLCOE, h); err != nil {
			return capex, err
		}
	}
	return capex, nil
}

// verifyRoundTrip re-runs the forward calculation with capex substituted in
// and compares against the target at 8 decimal places.
func verifyRoundTrip(annualYield float64, econ model.EconomicParameters, capex, targetLCOE float64, h model.Horizon) error {
	got, err := LCOE(annualYield, econ.WithCapex(capex), h)
	if err != nil {
		return err
	}
	if round8(got) != round8(targetLCOE) {
		return &ConsistencyError{Want: targetLCOE, Got: got}
	}
	return nil
}

func round8(x float64) float64 {
	return math.Round(x*1e8) / 1e8
}
