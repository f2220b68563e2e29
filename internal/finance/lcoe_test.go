package finance

import (
	"errors"
	"math"
	"testing"

	"pv-econ/internal/model"
)

func baseEcon() model.EconomicParameters {
	return model.EconomicParameters{
		Capex:        700,
		Opex:         15,
		TaxRate:      25,
		DiscountRate: 5,
		OMEscalation: 2,
	}
}

func baseHorizon() model.Horizon {
	return model.Horizon{Years: 25, Degradation: 0.01, DepreciationYears: 20}
}

func TestLCOE_ZeroOpexZeroTaxBoundary(t *testing.T) {
	econ := baseEcon()
	econ.Opex = 0
	econ.TaxRate = 0
	h := baseHorizon()
	annualYield := 1500.0

	got, err := LCOE(annualYield, econ, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With no opex and no tax the model reduces to capex over discounted
	// degraded energy.
	den := 0.0
	for year := 1; year <= h.Years; year++ {
		y := float64(year)
		den += annualYield * math.Pow(1-h.Degradation, y) / math.Pow(1+econ.DiscountRate/100, y)
	}
	want := econ.Capex / den

	if math.Abs(got-want) > 1e-12*want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLCOE_LinearInCapex(t *testing.T) {
	econ := baseEcon()
	econ.Opex = 0 // capex is then the only numerator input
	h := baseHorizon()

	lcoe1, err := LCOE(1500, econ, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lcoe2, err := LCOE(1500, econ.WithCapex(2*econ.Capex), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(lcoe2-2*lcoe1) > 1e-12*lcoe2 {
		t.Fatalf("doubling capex with zero opex: got %v, want %v", lcoe2, 2*lcoe1)
	}
}

func TestLCOE_MonotonicInDegradation(t *testing.T) {
	econ := baseEcon()
	h := baseHorizon()

	prev := -1.0
	for _, deg := range []float64{0.0, 0.005, 0.01, 0.02, 0.05} {
		h.Degradation = deg
		lcoe, err := LCOE(1500, econ, h)
		if err != nil {
			t.Fatalf("deg=%v: unexpected error: %v", deg, err)
		}
		if lcoe <= prev {
			t.Fatalf("deg=%v: lcoe %v not strictly greater than %v", deg, lcoe, prev)
		}
		prev = lcoe
	}
}

func TestLCOE_DepreciationWindowBeyondLifetime(t *testing.T) {
	econ := baseEcon()
	h := baseHorizon()
	h.DepreciationYears = 40 // longer than the 25 year lifetime

	got, err := LCOE(1500, econ, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The shield applies in every lifetime year, but at the smaller annual
	// amount capex/40; the benefit beyond year 25 is simply lost.
	dep := econ.Capex / 40
	num := econ.Capex
	den := 0.0
	for year := 1; year <= h.Years; year++ {
		y := float64(year)
		disc := math.Pow(1+econ.DiscountRate/100, y)
		num += econ.Opex * (1 - econ.TaxRate/100) * math.Pow(1+econ.OMEscalation/100, y) / disc
		num -= dep * econ.TaxRate / 100 / disc
		den += 1500 * math.Pow(1-h.Degradation, y) / disc
	}
	want := num / den

	if math.Abs(got-want) > 1e-12*want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLCOE_RejectsDegenerateHorizon(t *testing.T) {
	econ := baseEcon()

	if _, err := LCOE(1500, econ, model.Horizon{Years: 0, DepreciationYears: 20}); err == nil {
		t.Fatal("expected error for zero lifetime, got nil")
	}
	if _, err := LCOE(1500, econ, model.Horizon{Years: 25, DepreciationYears: 0}); err == nil {
		t.Fatal("expected error for zero depreciation window, got nil")
	}
}

func TestCAPEX_RoundTrip(t *testing.T) {
	cases := []struct {
		name        string
		econ        model.EconomicParameters
		h           model.Horizon
		annualYield float64
	}{
		{"baseline", baseEcon(), baseHorizon(), 1500},
		{"no tax", model.EconomicParameters{Capex: 900, Opex: 20, DiscountRate: 7}, baseHorizon(), 1200},
		{"short life", baseEcon(), model.Horizon{Years: 10, Degradation: 0.02, DepreciationYears: 10}, 1800},
		{"depreciation beyond lifetime", baseEcon(), model.Horizon{Years: 15, Degradation: 0.01, DepreciationYears: 30}, 1600},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lcoe, err := LCOE(tc.annualYield, tc.econ, tc.h)
			if err != nil {
				t.Fatalf("LCOE: %v", err)
			}
			capex, err := CAPEX(tc.annualYield, tc.econ, lcoe, tc.h, true)
			if err != nil {
				t.Fatalf("CAPEX: %v", err)
			}
			if math.Abs(capex-tc.econ.Capex) > 1e-6*tc.econ.Capex {
				t.Fatalf("round trip: got capex %v, want %v", capex, tc.econ.Capex)
			}
		})
	}
}

func TestCAPEX_DoesNotMutateCaller(t *testing.T) {
	econ := baseEcon()
	before := econ

	if _, err := CAPEX(1500, econ, 0.042, baseHorizon(), true); err != nil {
		// A consistency error would still be a valid outcome to assert
		// non-mutation on.
		var consistency *ConsistencyError
		if !errors.As(err, &consistency) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if econ != before {
		t.Fatalf("caller economics mutated: %+v != %+v", econ, before)
	}
}

func TestCAPEX_ConsistencyCheckFires(t *testing.T) {
	econ := baseEcon()
	h := baseHorizon()
	target := 0.05

	capex, err := CAPEX(1500, econ, target, h, false)
	if err != nil {
		t.Fatalf("CAPEX without check: %v", err)
	}

	// A corrupted solution must trip the 8-decimal round-trip comparison.
	err = verifyRoundTrip(1500, econ, capex+100, target, h)
	var consistency *ConsistencyError
	if !errors.As(err, &consistency) {
		t.Fatalf("expected ConsistencyError, got %v", err)
	}
	if consistency.Want != target {
		t.Errorf("Want: got %v, want %v", consistency.Want, target)
	}
	if consistency.Got == consistency.Want {
		t.Error("expected diverging recomputed lcoe in error payload")
	}

	// The same corrupted value goes unnoticed when verification is off:
	// check=false performs no comparison at all.
	if _, err := CAPEX(1500, econ, target, h, false); err != nil {
		t.Fatalf("check=false must not raise: %v", err)
	}
}

func TestCAPEX_NoSolution(t *testing.T) {
	// Tx=100% and d=0 make the per-unit depreciation shield sum to exactly
	// one, cancelling the unit capital outflow.
	econ := model.EconomicParameters{Opex: 10, TaxRate: 100, DiscountRate: 0}
	h := model.Horizon{Years: 5, Degradation: 0.01, DepreciationYears: 4}

	_, err := CAPEX(1500, econ, 0.05, h, false)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}
}

func TestCAPEX_RejectsDegenerateHorizon(t *testing.T) {
	if _, err := CAPEX(1500, baseEcon(), 0.05, model.Horizon{Years: 0, DepreciationYears: 20}, false); err == nil {
		t.Fatal("expected error for zero lifetime, got nil")
	}
	if _, err := CAPEX(1500, baseEcon(), 0.05, model.Horizon{Years: 25, DepreciationYears: 0}, false); err == nil {
		t.Fatal("expected error for zero depreciation window, got nil")
	}
}
