package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pv-econ/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load plant parameters from a separate YAML (e.g. examples/plants/*.yaml).
	// If both PlantFile and Plant are provided, Plant overrides PlantFile.
	PlantFile string          `yaml:"plant_file"`
	Plant     PlantConfig     `yaml:"plant"`
	Economics EconomicsConfig `yaml:"economics"`
	Horizon   HorizonConfig   `yaml:"horizon"`
}

type PlantConfig struct {
	Name                  string  `yaml:"name"`
	ModuleEfficiency      float64 `yaml:"module_efficiency"`
	AvailableAreaFraction float64 `yaml:"available_area_fraction"`
	TiltDeg               float64 `yaml:"tilt_deg"`
	AzimuthDeg            float64 `yaml:"azimuth_deg"`
	Albedo                float64 `yaml:"albedo"`
	RatedDCPowerW         float64 `yaml:"rated_dc_power_w"`
	TempCoeff             float64 `yaml:"temp_coeff"`
	SystemLosses          float64 `yaml:"system_losses"`
	InverterEfficiency    float64 `yaml:"inverter_efficiency"`
	AbsorptionCoeff       float64 `yaml:"absorption_coeff"`
	ThermalLossU0         float64 `yaml:"thermal_loss_u0"`
	ThermalLossU1         float64 `yaml:"thermal_loss_u1"`
}

// EconomicsConfig mirrors model.EconomicParameters. Rates are percentages,
// matching the model contract.
type EconomicsConfig struct {
	Capex        float64 `yaml:"capex"`
	Opex         float64 `yaml:"opex"`
	TaxRate      float64 `yaml:"tax_rate"`
	DiscountRate float64 `yaml:"discount_rate"`
	OMEscalation float64 `yaml:"om_escalation"`
}

// HorizonConfig mirrors model.Horizon. Degradation is a fraction.
type HorizonConfig struct {
	Years             int     `yaml:"years"`
	Degradation       float64 `yaml:"degradation"`
	DepreciationYears int     `yaml:"depreciation_years"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If plant_file is set, load it and merge in any explicit overrides from c.Plant.
	if c.PlantFile != "" {
		plantPath := c.PlantFile
		if !filepath.IsAbs(plantPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), plantPath)
			if _, err := os.Stat(cand); err == nil {
				plantPath = cand
			}
		}
		loaded, err := loadPlantFile(plantPath)
		if err != nil {
			return nil, err
		}
		c.Plant = MergePlant(loaded, c.Plant)
	}
	return &c, nil
}

// ApplyDefaults fills unset horizon fields with the standard assumptions
// (25y lifetime, 1%/y degradation, 20y depreciation).
func (c *Config) ApplyDefaults() {
	def := model.DefaultHorizon()
	if c.Horizon.Years == 0 {
		c.Horizon.Years = def.Years
	}
	if c.Horizon.Degradation == 0 {
		c.Horizon.Degradation = def.Degradation
	}
	if c.Horizon.DepreciationYears == 0 {
		c.Horizon.DepreciationYears = def.DepreciationYears
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Horizon.ToModel().Validate(); err != nil {
		return fmt.Errorf("horizon config invalid: %w", err)
	}
	// Plant section is optional (the financial model does not need it), but
	// if any field is set the whole section must be coherent.
	if c.Plant != (PlantConfig{}) {
		if err := c.Plant.ToModelParams().Validate(); err != nil {
			return fmt.Errorf("plant config invalid: %w", err)
		}
	}
	return nil
}

func (p PlantConfig) ToModelParams() model.PlantParams {
	return model.PlantParams{
		ModuleEfficiency:      p.ModuleEfficiency,
		AvailableAreaFraction: p.AvailableAreaFraction,
		TiltDeg:               p.TiltDeg,
		AzimuthDeg:            p.AzimuthDeg,
		Albedo:                p.Albedo,
		RatedDCPowerW:         p.RatedDCPowerW,
		TempCoeff:             p.TempCoeff,
		SystemLosses:          p.SystemLosses,
		InverterEfficiency:    p.InverterEfficiency,
		AbsorptionCoeff:       p.AbsorptionCoeff,
		ThermalLossU0:         p.ThermalLossU0,
		ThermalLossU1:         p.ThermalLossU1,
	}
}

func (e EconomicsConfig) ToModel() model.EconomicParameters {
	return model.EconomicParameters{
		Capex:        e.Capex,
		Opex:         e.Opex,
		TaxRate:      e.TaxRate,
		DiscountRate: e.DiscountRate,
		OMEscalation: e.OMEscalation,
	}
}

func (h HorizonConfig) ToModel() model.Horizon {
	return model.Horizon{
		Years:             h.Years,
		Degradation:       h.Degradation,
		DepreciationYears: h.DepreciationYears,
	}
}

type plantFileWrapper struct {
	Plant PlantConfig `yaml:"plant"`
}

func loadPlantFile(path string) (PlantConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlantConfig{}, err
	}
	var w plantFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PlantConfig{}, err
	}
	return w.Plant, nil
}

// MergePlant overlays non-zero fields from override onto base.
// This is used when loading a plant file and then applying overrides from the request.
func MergePlant(base, override PlantConfig) PlantConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ModuleEfficiency != 0 {
		out.ModuleEfficiency = override.ModuleEfficiency
	}
	if override.AvailableAreaFraction != 0 {
		out.AvailableAreaFraction = override.AvailableAreaFraction
	}
	// Note: tilt/azimuth of 0 are legitimate values, but presets always set
	// them explicitly, so zero means "not overridden" here.
	if override.TiltDeg != 0 {
		out.TiltDeg = override.TiltDeg
	}
	if override.AzimuthDeg != 0 {
		out.AzimuthDeg = override.AzimuthDeg
	}
	if override.Albedo != 0 {
		out.Albedo = override.Albedo
	}
	if override.RatedDCPowerW != 0 {
		out.RatedDCPowerW = override.RatedDCPowerW
	}
	if override.TempCoeff != 0 {
		out.TempCoeff = override.TempCoeff
	}
	if override.SystemLosses != 0 {
		out.SystemLosses = override.SystemLosses
	}
	if override.InverterEfficiency != 0 {
		out.InverterEfficiency = override.InverterEfficiency
	}
	if override.AbsorptionCoeff != 0 {
		out.AbsorptionCoeff = override.AbsorptionCoeff
	}
	if override.ThermalLossU0 != 0 {
		out.ThermalLossU0 = override.ThermalLossU0
	}
	if override.ThermalLossU1 != 0 {
		out.ThermalLossU1 = override.ThermalLossU1
	}
	return out
}
