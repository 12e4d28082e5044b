package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"propmeta/internal/types"
)

// Extractor resolves property metadata for one type description at a
// time. It holds only immutable configuration derived from the
// EngineConfig, so a single instance is safe for concurrent use across
// goroutines.
type Extractor struct {
	cfg           types.EngineConfig
	categories    map[string]struct{}
	relevant      map[string]struct{}
	known         map[string]struct{}
	ignoredClass  map[string]struct{}
	ignoredObject map[string]struct{}
	overrides     map[types.Category]map[types.Category]struct{}
}

type ExtractResult struct {
	Properties  []types.ResolvedProperty
	Diagnostics []types.Diagnostic
}

// NewExtractor validates the configuration and returns a ready
// extractor. Validation failures are configuration errors: the engine
// refuses to proceed rather than silently mis-resolve.
func NewExtractor(cfg types.EngineConfig) (Extractor, error) {
	if strings.TrimSpace(cfg.DomainLabel) == "" {
		return Extractor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("domain label must be set")
	}
	if len(cfg.Categories) == 0 {
		return Extractor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one primary category must be configured")
	}
	categories := map[string]struct{}{}
	for _, category := range cfg.Categories {
		name := strings.TrimSpace(string(category))
		if name == "" {
			return Extractor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("primary category name must not be empty")
		}
		if _, ok := categories[name]; ok {
			return Extractor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("primary category declared twice: %s", name))
		}
		categories[name] = struct{}{}
	}
	relevant := map[string]struct{}{}
	for _, name := range cfg.RelevantMarkers {
		relevant[name] = struct{}{}
	}
	for _, category := range cfg.Categories {
		if _, ok := relevant[string(category)]; !ok {
			return Extractor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("primary category missing from relevant markers: %s", category))
		}
	}
	known := map[string]struct{}{}
	for _, name := range cfg.KnownUnsupported {
		if _, ok := relevant[name]; ok {
			return Extractor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("marker cannot be both relevant and known-unsupported: %s", name))
		}
		known[name] = struct{}{}
	}
	overrides := map[types.Category]map[types.Category]struct{}{}
	for base, narrowed := range cfg.Overrides {
		if _, ok := categories[string(base)]; !ok {
			return Extractor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("override map references unknown base category: %s", base))
		}
		for _, override := range narrowed {
			if _, ok := categories[string(override)]; !ok {
				return Extractor{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("override map references unknown override category: %s", override))
			}
			if override == base {
				return Extractor{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("category cannot override itself: %s", base))
			}
			if _, ok := overrides[base]; !ok {
				overrides[base] = map[types.Category]struct{}{}
			}
			overrides[base][override] = struct{}{}
		}
	}
	return Extractor{
		cfg:           cfg,
		categories:    categories,
		relevant:      relevant,
		known:         known,
		ignoredClass:  nameSet(cfg.IgnoredClassRoots),
		ignoredObject: nameSet(cfg.IgnoredObjectRoots),
		overrides:     overrides,
	}, nil
}

// Extract runs the full pipeline for one target type: hierarchy walk,
// declaration aggregation, category resolution, and diagnostics. The
// call fails only for malformed type descriptions; everything the
// engine finds while inspecting a well-formed type is reported as
// diagnostics, never as an error.
func (e Extractor) Extract(ctx context.Context, set types.TypeSet, target string) (ExtractResult, error) {
	assert.NotEmpty(ctx, target, "target type name must be set")

	sites, err := e.walk(set, target)
	if err != nil {
		return ExtractResult{}, err
	}
	records := e.aggregate(sites)

	result := ExtractResult{}
	for _, record := range records {
		res := e.resolveCategory(record)
		if res.resolved {
			result.Properties = append(result.Properties, types.ResolvedProperty{
				Name:       record.name,
				Category:   res.winner,
				Supporting: e.supportingMarkers(record),
			})
		}
		result.Diagnostics = append(result.Diagnostics, e.buildDiagnostics(record, res)...)
	}
	sort.Slice(result.Properties, func(i, j int) bool {
		return result.Properties[i].Name < result.Properties[j].Name
	})
	sort.SliceStable(result.Diagnostics, func(i, j int) bool {
		return result.Diagnostics[i].Property < result.Diagnostics[j].Property
	})

	log.Ctx(ctx).Debug().
		Str("type", target).
		Int("properties", len(result.Properties)).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("extraction completed")
	return result, nil
}

// Label returns the configured domain label for message rendering.
func (e Extractor) Label() string {
	return e.cfg.DomainLabel
}

func (e Extractor) isRecognized(name string) bool {
	if _, ok := e.relevant[name]; ok {
		return true
	}
	_, ok := e.known[name]
	return ok
}

func (e Extractor) isCategory(name string) bool {
	_, ok := e.categories[name]
	return ok
}

func (e Extractor) ignoredRoot(name string) bool {
	if _, ok := e.ignoredClass[name]; ok {
		return true
	}
	_, ok := e.ignoredObject[name]
	return ok
}

func nameSet(names []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
