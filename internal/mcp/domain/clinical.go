package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/widmark/internal/core/units"
	"github.com/louisbranch/widmark/internal/ethanol"
)

// ClinicalEffectsInput represents the MCP tool input for a clinical
// effects classification.
type ClinicalEffectsInput struct {
	ConcentrationMgPerDL float64 `json:"concentration_mg_per_dl" jsonschema:"serum ethanol concentration in mg/dL"`
}

// ClinicalEffectsResult represents the MCP tool output for a clinical
// effects classification.
type ClinicalEffectsResult struct {
	Matched      bool     `json:"matched" jsonschema:"false when the concentration is below the lowest clinical band"`
	Description  string   `json:"description,omitempty" jsonschema:"expected clinical effects for the matched band"`
	LowerMgPerDL float64  `json:"lower_mg_per_dl,omitempty" jsonschema:"inclusive lower bound of the matched band in mg/dL"`
	UpperMgPerDL *float64 `json:"upper_mg_per_dl,omitempty" jsonschema:"inclusive upper bound of the matched band in mg/dL; absent for the open-ended top band"`
}

// ClinicalEffectsTool defines the MCP tool schema for classifying a serum
// concentration against the clinical-effects table.
func ClinicalEffectsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clinical_effects",
		Description: "Classifies a serum ethanol concentration against the clinical-effects table. Boundary values classify into the lower adjoining band.",
	}
}

// ClinicalEffectsHandler executes a clinical effects classification.
func ClinicalEffectsHandler() mcp.ToolHandlerFor[ClinicalEffectsInput, ClinicalEffectsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ClinicalEffectsInput) (*mcp.CallToolResult, ClinicalEffectsResult, error) {
		matched, ok := ethanol.Classify(units.Of(input.ConcentrationMgPerDL, units.MilligramsPerDeciliter))
		if !ok {
			return nil, ClinicalEffectsResult{}, nil
		}

		result := ClinicalEffectsResult{
			Matched:      true,
			Description:  matched.Description,
			LowerMgPerDL: matched.Lower.In(units.MilligramsPerDeciliter),
		}
		if matched.Upper != nil {
			upper := matched.Upper.In(units.MilligramsPerDeciliter)
			result.UpperMgPerDL = &upper
		}
		return nil, result, nil
	}
}

// ClinicalRangeRow is one row of the clinical-effects resource payload.
type ClinicalRangeRow struct {
	LowerMgPerDL float64  `json:"lower_mg_per_dl"`
	UpperMgPerDL *float64 `json:"upper_mg_per_dl,omitempty"`
	Description  string   `json:"description"`
}

// ClinicalRangesPayload is the clinical-effects resource payload.
type ClinicalRangesPayload struct {
	Unit   string             `json:"unit"`
	Ranges []ClinicalRangeRow `json:"ranges"`
}

// ClinicalRangesResource defines the MCP resource for the clinical-effects
// table.
func ClinicalRangesResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "clinical_ranges",
		Title:       "Clinical effects of serum ethanol",
		Description: "Ordered table of serum ethanol concentration bands and their expected clinical effects",
		MIMEType:    "application/json",
		URI:         "clinical://ranges",
	}
}

// ClinicalRangesResourceHandler returns the clinical-effects table as a
// readable resource.
func ClinicalRangesResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := ClinicalRangesResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		payload := ClinicalRangesPayload{Unit: units.MilligramsPerDeciliter.Symbol()}
		for _, r := range ethanol.ClinicalRanges() {
			row := ClinicalRangeRow{
				LowerMgPerDL: r.Lower.In(units.MilligramsPerDeciliter),
				Description:  r.Description,
			}
			if r.Upper != nil {
				upper := r.Upper.In(units.MilligramsPerDeciliter)
				row.UpperMgPerDL = &upper
			}
			payload.Ranges = append(payload.Ranges, row)
		}

		contents, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode clinical ranges: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(contents),
				},
			},
		}, nil
	}
}
