package orchestrator

import (
	"context"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/scanner"
)

// DefaultMaxParallel bounds concurrent scans when no limit is configured.
const DefaultMaxParallel = 3

// Options configures a run.
type Options struct {
	MaxParallel int
	// BestEffort records failed pairs instead of aborting the run.
	BestEffort bool
}

// Result holds the outcome of a run. Reports are in account order, then
// region order.
type Result struct {
	Reports  []model.AccountRegionReport
	Skipped  []model.ScanTarget
	Failures []model.ScanFailure
}

type slot struct {
	report model.AccountRegionReport
	ok     bool
	err    error
}

type service struct {
	scanner scanner.Service
	opts    Options
}

// Service is the interface for orchestrator service.
type Service interface {
	Run(ctx context.Context, accounts []model.Account, regions []string) (Result, error)
}
