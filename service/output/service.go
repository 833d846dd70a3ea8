// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	jsonoutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/json_output"
)

// stdout receives JSON listings; replaced in tests.
var stdout io.Writer = os.Stdout

// NewService creates a new output service with the specified format
func NewService(format string) Service {
	return NewServiceWithRenderer(format, &realRenderer{})
}

// NewServiceWithRenderer creates a new output service with a custom renderer.
func NewServiceWithRenderer(format string, renderer Renderer) Service {
	f := FormatTable
	switch format {
	case "json":
		f = FormatJSON
	case "html":
		f = FormatHTML
	}

	return &service{
		format:   f,
		renderer: renderer,
	}
}

func (s *service) RenderReport(input model.RenderReportInput) error {
	s.renderer.StopSpinner()

	switch s.format {
	case FormatJSON:
		return s.renderer.OutputScanJSON(input)
	case FormatHTML:
		s.renderer.DrawSkipped(input.Skipped)
		s.renderer.DrawFailures(input.Failures)
		path, err := s.renderer.WriteHTMLReport(input.OutputFile, input.Document.Body)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\n📄 HTML report saved to: %s\n", path)
		return nil
	default:
		s.renderer.DrawSkipped(input.Skipped)
		s.renderer.DrawSummaryTable(input)
		s.renderer.DrawFailures(input.Failures)
		return nil
	}
}

func (s *service) RenderAccounts(accounts []model.Account) error {
	s.renderer.StopSpinner()

	if s.format == FormatJSON {
		return jsonoutput.WriteJSON(stdout, accounts)
	}
	s.renderer.DrawAccountsTable(accounts)
	return nil
}

func (s *service) RenderRegions(regions []string) error {
	s.renderer.StopSpinner()

	if s.format == FormatJSON {
		return jsonoutput.WriteJSON(stdout, regions)
	}
	s.renderer.DrawRegions(regions)
	return nil
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
