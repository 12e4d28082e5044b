package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"propmeta/internal/core"
)

// Validate builds the extractor from the domain config (surfacing
// configuration errors) and dry-runs the hierarchy walk for every
// target, surfacing malformed type descriptions without writing any
// output.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	domainPath := strings.TrimSpace(req.DomainPath)
	if domainPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("domain config path is required")
	}
	typesPath := strings.TrimSpace(req.TypesPath)
	if typesPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("type set path is required")
	}

	cfg, err := s.DomainSource.LoadDomain(domainPath)
	if err != nil {
		return ValidateResult{}, err
	}
	extractor, err := core.NewExtractor(cfg)
	if err != nil {
		return ValidateResult{}, err
	}
	set, err := s.TypeSource.LoadSet(typesPath)
	if err != nil {
		return ValidateResult{}, err
	}
	targets := req.Targets
	if len(targets) == 0 {
		targets = set.Names()
	}
	for _, target := range targets {
		if _, err := extractor.Extract(ctx, set, target); err != nil {
			return ValidateResult{}, err
		}
	}
	return ValidateResult{
		DomainLabel: cfg.DomainLabel,
		TypeCount:   len(targets),
	}, nil
}
