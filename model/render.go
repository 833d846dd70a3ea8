package model

// RenderReportInput is everything the output service prints for one run.
type RenderReportInput struct {
	Reports    []AccountRegionReport
	Document   Document
	Risky      map[string]bool // anchors of the sections with findings
	Skipped    []ScanTarget
	Failures   []ScanFailure
	OutputFile string
}

// ScanExportJSON is the JSON form of a run, readable back for rendering.
type ScanExportJSON struct {
	GeneratedAt string                `json:"generated_at"`
	Reports     []AccountRegionReport `json:"reports"`
	Skipped     []ScanTarget          `json:"skipped,omitempty"`
	Failures    []ScanFailureJSON     `json:"failures,omitempty"`
}

// ScanFailureJSON is the JSON form of a ScanFailure.
type ScanFailureJSON struct {
	AccountID string `json:"account_id"`
	Region    string `json:"region"`
	Error     string `json:"error"`
}
