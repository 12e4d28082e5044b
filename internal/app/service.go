package app

import (
	"time"

	"propmeta/internal/adapters"
	"propmeta/internal/ports"
)

type Service struct {
	TypeSource   ports.TypeSourcePort
	DomainSource ports.DomainConfigPort
	OutputReader ports.ReportReaderPort
	Sink         ports.DiagnosticSinkPort
	Clock        func() time.Time
}

// NewService wires the default file-backed adapters. Sink is left nil
// so Extract falls back to the log sink built from the loaded domain
// label.
func NewService() Service {
	return Service{
		TypeSource:   adapters.NewTypeFileAdapter(),
		DomainSource: adapters.NewDomainFileAdapter(),
		OutputReader: adapters.NewReportFileAdapter(""),
		Clock:        time.Now,
	}
}
