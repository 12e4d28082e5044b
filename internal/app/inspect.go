package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect summarizes a previously written extraction report: how many
// types and properties it covers, the per-category property counts,
// and how many warnings were recorded.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	report, err := s.OutputReader.ReadReport(outputDir)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{TypeCount: len(report.Types)}
	counts := map[string]int{}
	for _, entry := range report.Types {
		result.PropertyCount += len(entry.Properties)
		result.WarningCount += len(entry.Warnings)
		for _, property := range entry.Properties {
			counts[property.Category]++
		}
	}
	for category, count := range counts {
		result.Categories = append(result.Categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		return result.Categories[i].Category < result.Categories[j].Category
	})
	return result, nil
}
