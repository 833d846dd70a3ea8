package output

import (
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	htmloutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/html_output"
	jsonoutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/json_output"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/spinner"
	summarytable "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/summary_table"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

// Renderer defines the interface for drawing tables and writing files
type Renderer interface {
	DrawSummaryTable(input model.RenderReportInput)
	DrawSkipped(skipped []model.ScanTarget)
	DrawFailures(failures []model.ScanFailure)
	DrawAccountsTable(accounts []model.Account)
	DrawRegions(regions []string)
	OutputScanJSON(input model.RenderReportInput) error
	WriteHTMLReport(path, doc string) (string, error)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawSummaryTable(input model.RenderReportInput) {
	summarytable.DrawSummaryTable(input)
}

func (r *realRenderer) DrawSkipped(skipped []model.ScanTarget) {
	summarytable.DrawSkipped(skipped)
}

func (r *realRenderer) DrawFailures(failures []model.ScanFailure) {
	summarytable.DrawFailures(failures)
}

func (r *realRenderer) DrawAccountsTable(accounts []model.Account) {
	summarytable.DrawAccountsTable(accounts)
}

func (r *realRenderer) DrawRegions(regions []string) {
	summarytable.DrawRegions(regions)
}

func (r *realRenderer) OutputScanJSON(input model.RenderReportInput) error {
	return jsonoutput.OutputScanJSON(input)
}

func (r *realRenderer) WriteHTMLReport(path, doc string) (string, error) {
	return htmloutput.WriteHTMLReport(path, doc)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderReport(input model.RenderReportInput) error
	RenderAccounts(accounts []model.Account) error
	RenderRegions(regions []string) error
	StopSpinner()
}
