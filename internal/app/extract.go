package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"propmeta/internal/adapters"
	"propmeta/internal/core"
	"propmeta/internal/ports"
	"propmeta/internal/types"
)

func (s Service) Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	domainPath := strings.TrimSpace(req.DomainPath)
	if domainPath == "" {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("domain config path is required")
	}
	typesPath := strings.TrimSpace(req.TypesPath)
	if typesPath == "" {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("type set path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	cfg, err := s.DomainSource.LoadDomain(domainPath)
	if err != nil {
		return ExtractResult{}, err
	}
	extractor, err := core.NewExtractor(cfg)
	if err != nil {
		return ExtractResult{}, err
	}
	set, err := s.TypeSource.LoadSet(typesPath)
	if err != nil {
		return ExtractResult{}, err
	}
	targets := req.Targets
	if len(targets) == 0 {
		targets = set.Names()
	}
	sink := s.Sink
	if sink == nil {
		sink = ports.DiagnosticSinkPort(adapters.NewLogSinkAdapter(cfg.DomainLabel))
	}

	report := types.ExtractionReport{
		FormatVersion: adapters.SupportedFormatVersion,
		GeneratedAt:   s.now().Format(time.RFC3339),
		DomainLabel:   cfg.DomainLabel,
	}
	result := ExtractResult{OutputDir: outputDir}
	for _, target := range targets {
		extracted, err := extractor.Extract(ctx, set, target)
		if err != nil {
			return ExtractResult{}, err
		}
		entry := types.TypeReport{Name: target}
		for _, property := range extracted.Properties {
			entry.Properties = append(entry.Properties, types.PropertyEntry{
				Name:       property.Name,
				Category:   string(property.Category),
				Supporting: property.Supporting,
			})
		}
		for _, diagnostic := range extracted.Diagnostics {
			if err := sink.Collect(ctx, target, diagnostic); err != nil {
				return ExtractResult{}, err
			}
			entry.Warnings = append(entry.Warnings, diagnostic.Message(cfg.DomainLabel))
		}
		report.Types = append(report.Types, entry)
		result.TypeCount++
		result.PropertyCount += len(extracted.Properties)
		result.DiagnosticCount += len(extracted.Diagnostics)
	}

	output := adapters.NewReportFileAdapter(outputDir)
	if err := output.WriteReport(report); err != nil {
		return ExtractResult{}, err
	}
	log.Ctx(ctx).Debug().
		Int("types", result.TypeCount).
		Int("properties", result.PropertyCount).
		Int("diagnostics", result.DiagnosticCount).
		Msg("extract completed")
	return result, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}
