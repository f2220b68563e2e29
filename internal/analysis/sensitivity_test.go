package analysis

import (
	"testing"

	"pv-econ/internal/model"
)

func testEcon() model.EconomicParameters {
	return model.EconomicParameters{
		Capex:        700,
		Opex:         15,
		TaxRate:      25,
		DiscountRate: 5,
		OMEscalation: 2,
	}
}

func TestSweep_CapexIncreasesLCOE(t *testing.T) {
	points, err := Sweep(1500, testEcon(), model.DefaultHorizon(), ParamCapex, []float64{500, 700, 900, 1100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].LCOE <= points[i-1].LCOE {
			t.Fatalf("lcoe not increasing with capex: %v", points)
		}
	}
}

func TestSweep_DegradationIncreasesLCOE(t *testing.T) {
	points, err := Sweep(1500, testEcon(), model.DefaultHorizon(), ParamDegradation, []float64{0.005, 0.01, 0.02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].LCOE <= points[i-1].LCOE {
			t.Fatalf("lcoe not increasing with degradation: %v", points)
		}
	}
}

func TestSweep_UnknownParameter(t *testing.T) {
	if _, err := Sweep(1500, testEcon(), model.DefaultHorizon(), Parameter("tilt"), []float64{1}); err == nil {
		t.Fatal("expected error for unknown parameter, got nil")
	}
}

func TestSweep_NoValues(t *testing.T) {
	if _, err := Sweep(1500, testEcon(), model.DefaultHorizon(), ParamCapex, nil); err == nil {
		t.Fatal("expected error for empty sweep, got nil")
	}
}

func TestRankScenarios_OrdersByLCOE(t *testing.T) {
	expensive := testEcon()
	expensive.Capex = 1200
	cheap := testEcon()
	cheap.Capex = 400

	ranked, err := RankScenarios([]Scenario{
		{Name: "expensive", AnnualYield: 1500, Econ: expensive, Horizon: model.DefaultHorizon()},
		{Name: "cheap", AnnualYield: 1500, Econ: cheap, Horizon: model.DefaultHorizon()},
		{Name: "base", AnnualYield: 1500, Econ: testEcon(), Horizon: model.DefaultHorizon()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"cheap", "base", "expensive"}
	for i, want := range wantOrder {
		if ranked[i].Name != want {
			t.Fatalf("rank %d: got %q, want %q (full: %+v)", i, ranked[i].Name, want, ranked)
		}
	}
}

func TestRankScenarios_FailsOnInvalidScenario(t *testing.T) {
	_, err := RankScenarios([]Scenario{
		{Name: "bad", AnnualYield: 1500, Econ: testEcon(), Horizon: model.Horizon{Years: 0, DepreciationYears: 20}},
	})
	if err == nil {
		t.Fatal("expected error for invalid horizon, got nil")
	}
}
