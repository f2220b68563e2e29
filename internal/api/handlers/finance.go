package handlers

import (
	"errors"
	"net/http"

	"pv-econ/internal/analysis"
	"pv-econ/internal/api/models"
	"pv-econ/internal/finance"
	"pv-econ/internal/model"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles LCOE/CAPEX requests
type FinanceHandler struct{}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler() *FinanceHandler {
	return &FinanceHandler{}
}

// ComputeLCOE handles POST /api/v1/lcoe
func (h *FinanceHandler) ComputeLCOE(c *gin.Context) {
	var req models.LCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	econ := toEconomics(req.Economics)
	horizon := toHorizon(req.Horizon)

	if !req.Options.IncludeSchedule {
		lcoe, err := finance.LCOE(req.AnnualYield, econ, horizon)
		if err != nil {
			badRequest(c, "INVALID_HORIZON", err.Error())
			return
		}
		c.JSON(http.StatusOK, models.LCOEResponse{LCOE: lcoe})
		return
	}

	result, err := finance.Schedule(req.AnnualYield, econ, horizon)
	if err != nil {
		badRequest(c, "INVALID_HORIZON", err.Error())
		return
	}

	rows := make([]models.ScheduleRow, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = models.ScheduleRow{
			Year:               r.Year,
			DiscountFactor:     r.DiscountFactor,
			OpexAfterTax:       r.OpexAfterTax,
			DepreciationShield: r.DepreciationShield,
			Energy:             r.Energy,
			CumulativeCost:     r.CumulativeCost,
			CumulativeEnergy:   r.CumulativeEnergy,
			LCOEToDate:         r.LCOEToDate,
		}
	}
	c.JSON(http.StatusOK, models.LCOEResponse{LCOE: result.LCOE, Schedule: rows})
}

// SolveCapex handles POST /api/v1/capex
func (h *FinanceHandler) SolveCapex(c *gin.Context) {
	var req models.CapexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	capex, err := finance.CAPEX(req.AnnualYield, toEconomics(req.Economics), req.TargetLCOE, toHorizon(req.Horizon), req.Check)
	if err != nil {
		var consistency *finance.ConsistencyError
		switch {
		case errors.As(err, &consistency):
			// Inversion round-trip failure is a server-side logic fault.
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "CONSISTENCY_ERROR",
					Message: err.Error(),
					Details: map[string]interface{}{
						"target_lcoe":     consistency.Want,
						"recomputed_lcoe": consistency.Got,
					},
				},
			})
		case errors.Is(err, finance.ErrNoSolution):
			badRequest(c, "NO_SOLUTION", err.Error())
		default:
			badRequest(c, "INVALID_HORIZON", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, models.CapexResponse{Capex: capex, Checked: req.Check})
}

// CompareLCOE handles POST /api/v1/lcoe/compare
func (h *FinanceHandler) CompareLCOE(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Variations) == 0 {
		badRequest(c, "INVALID_REQUEST", "at least one variation is required")
		return
	}

	horizon := toHorizon(req.Horizon)
	scenarios := make([]analysis.Scenario, 0, len(req.Variations))
	for _, v := range req.Variations {
		scenarios = append(scenarios, analysis.Scenario{
			Name:        v.Name,
			AnnualYield: req.AnnualYield,
			Econ:        mergeEconomics(req.BaseEconomics, v.Economics),
			Horizon:     horizon,
		})
	}

	ranked, err := analysis.RankScenarios(scenarios)
	if err != nil {
		badRequest(c, "INVALID_SCENARIO", err.Error())
		return
	}

	results := make([]models.RankedResult, len(ranked))
	for i, r := range ranked {
		results[i] = models.RankedResult{Name: r.Name, LCOE: r.LCOE}
	}
	c.JSON(http.StatusOK, models.CompareResponse{Ranking: results})
}

// Helper methods

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func toEconomics(e models.Economics) model.EconomicParameters {
	return model.EconomicParameters{
		Capex:        e.Capex,
		Opex:         e.Opex,
		TaxRate:      e.TaxRate,
		DiscountRate: e.DiscountRate,
		OMEscalation: e.OMEscalation,
	}
}

// toHorizon fills unset fields with the standard assumptions.
func toHorizon(h models.Horizon) model.Horizon {
	out := model.DefaultHorizon()
	if h.Years != 0 {
		out.Years = h.Years
	}
	if h.Degradation != 0 {
		out.Degradation = h.Degradation
	}
	if h.DepreciationYears != 0 {
		out.DepreciationYears = h.DepreciationYears
	}
	return out
}

// mergeEconomics overlays non-zero fields from override onto base.
func mergeEconomics(base, override models.Economics) model.EconomicParameters {
	merged := base
	if override.Capex != 0 {
		merged.Capex = override.Capex
	}
	if override.Opex != 0 {
		merged.Opex = override.Opex
	}
	if override.TaxRate != 0 {
		merged.TaxRate = override.TaxRate
	}
	if override.DiscountRate != 0 {
		merged.DiscountRate = override.DiscountRate
	}
	if override.OMEscalation != 0 {
		merged.OMEscalation = override.OMEscalation
	}
	return toEconomics(merged)
}
