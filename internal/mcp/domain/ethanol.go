package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/widmark/internal/core/units"
	"github.com/louisbranch/widmark/internal/ethanol"
)

// EthanolIngestedInput represents the MCP tool input for an ethanol mass
// computation.
type EthanolIngestedInput struct {
	VolumeLiters  float64 `json:"volume_liters" jsonschema:"beverage volume in liters"`
	Concentration float64 `json:"concentration" jsonschema:"ethanol volume fraction in [0,1], e.g. 0.05 for 5% ABV"`
}

// EthanolIngestedResult represents the MCP tool output for an ethanol
// mass computation.
type EthanolIngestedResult struct {
	EthanolGrams float64 `json:"ethanol_grams" jsonschema:"mass of pure ethanol in grams"`
}

// EthanolIngestedTool defines the MCP tool schema for computing the mass
// of pure ethanol in a beverage.
func EthanolIngestedTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "ethanol_ingested",
		Description: "Computes the mass of pure ethanol in a beverage from its volume and ethanol fraction.",
	}
}

// EthanolIngestedHandler executes an ethanol mass computation.
func EthanolIngestedHandler() mcp.ToolHandlerFor[EthanolIngestedInput, EthanolIngestedResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EthanolIngestedInput) (*mcp.CallToolResult, EthanolIngestedResult, error) {
		if input.VolumeLiters <= 0 {
			return nil, EthanolIngestedResult{}, fmt.Errorf("volume_liters must be positive, got %v", input.VolumeLiters)
		}
		if input.Concentration < 0 || input.Concentration > 1 {
			return nil, EthanolIngestedResult{}, fmt.Errorf("concentration must be a fraction in [0,1], got %v", input.Concentration)
		}

		mass := ethanol.EthanolIngested(units.Of(input.VolumeLiters, units.Liters), input.Concentration)
		return nil, EthanolIngestedResult{EthanolGrams: mass.In(units.Grams)}, nil
	}
}

// PeakSerumEthanolInput represents the MCP tool input for a peak serum
// concentration estimate.
type PeakSerumEthanolInput struct {
	EthanolGrams    float64 `json:"ethanol_grams" jsonschema:"mass of pure ethanol ingested, in grams"`
	WeightKilograms float64 `json:"weight_kilograms" jsonschema:"body weight in kilograms"`
	Profile         string  `json:"profile,omitempty" jsonschema:"physiologic profile preset: population, male, or female (defaults to population)"`
}

// PeakSerumEthanolResult represents the MCP tool output for a peak serum
// concentration estimate.
type PeakSerumEthanolResult struct {
	PeakMgPerDL float64 `json:"peak_mg_per_dl" jsonschema:"instantaneous pre-elimination peak serum concentration in mg/dL"`
	Profile     string  `json:"profile" jsonschema:"profile preset used"`
}

// PeakSerumEthanolTool defines the MCP tool schema for the peak serum
// concentration estimate.
func PeakSerumEthanolTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "peak_serum_ethanol",
		Description: "Estimates the instantaneous pre-elimination peak serum ethanol concentration for a body weight and profile.",
	}
}

// PeakSerumEthanolHandler executes a peak serum concentration estimate.
func PeakSerumEthanolHandler() mcp.ToolHandlerFor[PeakSerumEthanolInput, PeakSerumEthanolResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PeakSerumEthanolInput) (*mcp.CallToolResult, PeakSerumEthanolResult, error) {
		if input.EthanolGrams < 0 {
			return nil, PeakSerumEthanolResult{}, fmt.Errorf("ethanol_grams must be non-negative, got %v", input.EthanolGrams)
		}
		if input.WeightKilograms <= 0 {
			return nil, PeakSerumEthanolResult{}, fmt.Errorf("weight_kilograms must be positive, got %v", input.WeightKilograms)
		}
		name, profile, err := resolveProfile(input.Profile)
		if err != nil {
			return nil, PeakSerumEthanolResult{}, err
		}

		peak := ethanol.PeakSerumEthanol(
			units.Of(input.EthanolGrams, units.Grams),
			units.Of(input.WeightKilograms, units.Kilograms),
			profile.Vd,
		)
		return nil, PeakSerumEthanolResult{
			PeakMgPerDL: peak.In(units.MilligramsPerDeciliter),
			Profile:     name,
		}, nil
	}
}

// EBACInput represents the MCP tool input for a Widmark blood ethanol
// estimate.
type EBACInput struct {
	EthanolGrams    float64 `json:"ethanol_grams" jsonschema:"mass of pure ethanol ingested, in grams"`
	WeightKilograms float64 `json:"weight_kilograms" jsonschema:"body weight in kilograms"`
	Hours           float64 `json:"hours" jsonschema:"time elapsed since drinking began, in hours"`
	Profile         string  `json:"profile,omitempty" jsonschema:"physiologic profile preset: population, male, or female (defaults to population)"`
}

// EBACResult represents the MCP tool output for a Widmark blood ethanol
// estimate.
type EBACResult struct {
	EbacMgPerDL     float64 `json:"ebac_mg_per_dl" jsonschema:"estimated blood ethanol concentration in mg/dL; negative once elimination exceeds the peak"`
	PeakMgPerDL     float64 `json:"peak_mg_per_dl" jsonschema:"instantaneous pre-elimination peak in mg/dL"`
	FullyEliminated bool    `json:"fully_eliminated" jsonschema:"true when the estimate is at or below zero"`
	Profile         string  `json:"profile" jsonschema:"profile preset used"`
}

// EBACTool defines the MCP tool schema for the Widmark estimate.
func EBACTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "ebac",
		Description: "Estimates blood ethanol concentration after an elapsed time using the Widmark equation. The raw estimate is unclamped.",
	}
}

// EBACHandler executes a Widmark blood ethanol estimate.
func EBACHandler() mcp.ToolHandlerFor[EBACInput, EBACResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EBACInput) (*mcp.CallToolResult, EBACResult, error) {
		if input.EthanolGrams < 0 {
			return nil, EBACResult{}, fmt.Errorf("ethanol_grams must be non-negative, got %v", input.EthanolGrams)
		}
		if input.WeightKilograms <= 0 {
			return nil, EBACResult{}, fmt.Errorf("weight_kilograms must be positive, got %v", input.WeightKilograms)
		}
		if input.Hours < 0 {
			return nil, EBACResult{}, fmt.Errorf("hours must be non-negative, got %v", input.Hours)
		}
		name, profile, err := resolveProfile(input.Profile)
		if err != nil {
			return nil, EBACResult{}, err
		}

		ethanolMass := units.Of(input.EthanolGrams, units.Grams)
		weight := units.Of(input.WeightKilograms, units.Kilograms)

		peak := ethanol.PeakSerumEthanol(ethanolMass, weight, profile.Vd)
		estimate := ethanol.EBAC(ethanolMass, weight, units.Of(input.Hours, units.Hours), profile)
		estimateMgPerDL := estimate.In(units.MilligramsPerDeciliter)

		return nil, EBACResult{
			EbacMgPerDL:     estimateMgPerDL,
			PeakMgPerDL:     peak.In(units.MilligramsPerDeciliter),
			FullyEliminated: estimateMgPerDL <= 0,
			Profile:         name,
		}, nil
	}
}

// resolveProfile maps an optional profile name to a preset, defaulting to
// the population mean.
func resolveProfile(name string) (string, ethanol.Profile, error) {
	if name == "" {
		name = "population"
	}
	profile, err := ethanol.ProfileByName(name)
	if err != nil {
		return "", ethanol.Profile{}, err
	}
	return name, profile, nil
}
