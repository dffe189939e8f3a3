package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestClinicalEffectsHandler(t *testing.T) {
	handler := ClinicalEffectsHandler()

	tests := []struct {
		name            string
		concentration   float64
		wantMatched     bool
		wantDescription string
		wantLower       float64
		wantUpper       *float64
	}{
		{
			name:          "below the lowest band",
			concentration: 10,
			wantMatched:   false,
		},
		{
			name:          "negative estimate",
			concentration: -5,
			wantMatched:   false,
		},
		{
			name:            "mid band",
			concentration:   75,
			wantMatched:     true,
			wantDescription: "Impaired judgement; impaired coordination",
			wantLower:       50,
			wantUpper:       floatPtr(100),
		},
		{
			name:            "boundary classifies into the lower band",
			concentration:   100,
			wantMatched:     true,
			wantDescription: "Impaired judgement; impaired coordination",
			wantLower:       50,
			wantUpper:       floatPtr(100),
		},
		{
			name:            "open-ended top band",
			concentration:   520,
			wantMatched:     true,
			wantDescription: "Respiratory depression; potentially fatal",
			wantLower:       400,
			wantUpper:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := handler(context.Background(), &mcp.CallToolRequest{}, ClinicalEffectsInput{
				ConcentrationMgPerDL: tt.concentration,
			})
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if output.Matched != tt.wantMatched {
				t.Fatalf("Matched = %v, want %v", output.Matched, tt.wantMatched)
			}
			if !tt.wantMatched {
				return
			}
			if output.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", output.Description, tt.wantDescription)
			}
			if output.LowerMgPerDL != tt.wantLower {
				t.Errorf("LowerMgPerDL = %v, want %v", output.LowerMgPerDL, tt.wantLower)
			}
			switch {
			case tt.wantUpper == nil && output.UpperMgPerDL != nil:
				t.Errorf("UpperMgPerDL = %v, want absent", *output.UpperMgPerDL)
			case tt.wantUpper != nil && output.UpperMgPerDL == nil:
				t.Errorf("UpperMgPerDL absent, want %v", *tt.wantUpper)
			case tt.wantUpper != nil && *output.UpperMgPerDL != *tt.wantUpper:
				t.Errorf("UpperMgPerDL = %v, want %v", *output.UpperMgPerDL, *tt.wantUpper)
			}
		})
	}
}

func TestClinicalRangesResourceHandler(t *testing.T) {
	handler := ClinicalRangesResourceHandler()

	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "clinical://ranges"},
	})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}

	contents := result.Contents[0]
	if contents.URI != "clinical://ranges" {
		t.Errorf("URI = %q, want %q", contents.URI, "clinical://ranges")
	}
	if contents.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q, want %q", contents.MIMEType, "application/json")
	}

	var payload ClinicalRangesPayload
	if err := json.Unmarshal([]byte(contents.Text), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Unit != "mg/dL" {
		t.Errorf("Unit = %q, want %q", payload.Unit, "mg/dL")
	}
	if len(payload.Ranges) != 7 {
		t.Fatalf("got %d ranges, want 7", len(payload.Ranges))
	}
	if payload.Ranges[0].LowerMgPerDL != 20 {
		t.Errorf("first band starts at %v, want 20", payload.Ranges[0].LowerMgPerDL)
	}
	last := payload.Ranges[len(payload.Ranges)-1]
	if last.UpperMgPerDL != nil {
		t.Errorf("top band has upper bound %v, want open-ended", *last.UpperMgPerDL)
	}
}

func floatPtr(v float64) *float64 { return &v }
