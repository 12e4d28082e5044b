package app

type ExtractRequest struct {
	DomainPath string
	TypesPath  string
	Targets    []string
	OutputDir  string
}

type ExtractResult struct {
	TypeCount       int
	PropertyCount   int
	DiagnosticCount int
	OutputDir       string
}

type ValidateRequest struct {
	DomainPath string
	TypesPath  string
	Targets    []string
}

type ValidateResult struct {
	DomainLabel string
	TypeCount   int
}

type InspectRequest struct {
	OutputDir string
}

type CategoryCount struct {
	Category string
	Count    int
}

type InspectResult struct {
	TypeCount     int
	PropertyCount int
	WarningCount  int
	Categories    []CategoryCount
}
