package finance

import (
	"math"

	"pv-econ/internal/model"
)

// CashflowRow is one year of the lifetime loop, all terms discounted to
// year 0. This is the primary artifact for "where the LCOE comes from".
type CashflowRow struct {
	Year int

	DiscountFactor float64 // (1+d/100)^year

	OpexAfterTax       float64 // discounted after-tax O&M cost
	DepreciationShield float64 // discounted tax shield, 0 outside the window
	Energy             float64 // discounted degraded yield, kWh/kW

	CumulativeCost   float64 // capex + opex terms - shields, through this year
	CumulativeEnergy float64
	LCOEToDate       float64 // CumulativeCost / CumulativeEnergy
}

type CashflowResult struct {
	Rows []CashflowRow
	LCOE float64 // equals the last row's LCOEToDate
}

// Schedule runs the same lifetime loop as LCOE but keeps the per-year
// breakdown. The final ratio is bit-identical to LCOE for the same inputs.
func Schedule(annualYield float64, econ model.EconomicParameters, h model.Horizon) (*CashflowResult, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	dep := econ.Capex / float64(h.DepreciationYears)

	rows := make([]CashflowRow, 0, h.Years)
	num := econ.Capex
	den := 0.0
	for year := 1; year <= h.Years; year++ {
		y := float64(year)
		discount := math.Pow(1+econ.DiscountRate/100, y)

		opex := econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OMEscalation/100, y) / discount
		shield := 0.0
		if year <= h.DepreciationYears {
			shield = dep * econ.TaxRate / 100 / discount
		}
		energy := annualYield * math.Pow(1-h.Degradation, y) / discount

		num += opex
		num -= shield
		den += energy

		rows = append(rows, CashflowRow{
			Year:               year,
			DiscountFactor:     discount,
			OpexAfterTax:       opex,
			DepreciationShield: shield,
			Energy:             energy,
			CumulativeCost:     num,
			CumulativeEnergy:   den,
			LCOEToDate:         num / den,
		})
	}

	return &CashflowResult{
		Rows: rows,
		LCOE: num / den,
	}, nil
}
