package converter

import (
	"diet-recommender/internal/delivery/dto"
	"diet-recommender/internal/service"
)

// ModelInfoToResponse summarises the loaded schema, vocabulary and schema gaps
func ModelInfoToResponse(columns, labels []string, report service.SchemaReport) *dto.ModelInfoResponse {
	unmapped := make([]dto.UnmappedIndicatorResponse, len(report.UnmappedIndicators))
	for i, u := range report.UnmappedIndicators {
		unmapped[i] = dto.UnmappedIndicatorResponse{
			Field:  u.Field,
			Value:  u.Value,
			Column: u.Column,
		}
	}

	missing := report.MissingNumeric
	if missing == nil {
		missing = []string{}
	}

	return &dto.ModelInfoResponse{
		ColumnCount:        len(columns),
		Columns:            columns,
		Labels:             labels,
		MissingNumeric:     missing,
		UnmappedIndicators: unmapped,
	}
}
