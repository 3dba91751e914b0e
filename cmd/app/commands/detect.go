package commands

import (
	"encoding/json"

	"github.com/allisson/pseudonym/internal/masking/domain"
	"github.com/allisson/pseudonym/internal/masking/service"
)

type detectedSpanOutput struct {
	Type     domain.FieldType `json:"type"`
	Start    int              `json:"start"`
	End      int              `json:"end"`
	RawMatch string           `json:"raw_match"`
}

// RunDetect scans text for PII-shaped substrings and writes the detected
// spans as JSON. Detection is stateless, so no tenant or master salt is
// required.
func RunDetect(text string, io IOTuple) error {
	spans := service.Detect(text)

	output := make([]detectedSpanOutput, len(spans))
	for i, span := range spans {
		output[i] = detectedSpanOutput{
			Type:     span.Type,
			Start:    span.Start,
			End:      span.End,
			RawMatch: span.RawMatch,
		}
	}

	encoder := json.NewEncoder(io.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
