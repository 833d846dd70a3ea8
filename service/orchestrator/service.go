// Package orchestrator fans scans out over every account and region.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/scanner"
	"golang.org/x/sync/errgroup"
)

// NewService creates a new orchestrator service.
func NewService(scannerService scanner.Service, opts Options) Service {
	if opts.MaxParallel < 1 {
		opts.MaxParallel = DefaultMaxParallel
	}
	return &service{
		scanner: scannerService,
		opts:    opts,
	}
}

// Targets expands accounts and regions into scan targets, account outer.
func Targets(accounts []model.Account, regions []string) []model.ScanTarget {
	targets := make([]model.ScanTarget, 0, len(accounts)*len(regions))
	for _, acct := range accounts {
		for _, region := range regions {
			targets = append(targets, model.ScanTarget{Account: acct, Region: region})
		}
	}
	return targets
}

// Run scans every account/region pair with at most MaxParallel scans in
// flight. Each scan writes only its own slot, so the result order does not
// depend on completion order. Without BestEffort the first failure cancels
// the remaining scans and is returned.
func (s *service) Run(ctx context.Context, accounts []model.Account, regions []string) (Result, error) {
	targets := Targets(accounts, regions)
	slots := make([]slot, len(targets))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxParallel)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				slots[i].err = err
				return nil
			}

			report, ok, err := s.scanner.ScanRegion(groupCtx, target)
			if err != nil {
				err = fmt.Errorf("scan %s/%s: %w", target.Account.ID, target.Region, err)
				slots[i].err = err
				if s.opts.BestEffort {
					return nil
				}
				return err
			}

			slots[i] = slot{report: report, ok: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var result Result
	for i, sl := range slots {
		switch {
		case sl.err != nil:
			result.Failures = append(result.Failures, model.ScanFailure{Target: targets[i], Err: sl.err})
		case sl.ok:
			result.Reports = append(result.Reports, sl.report)
		default:
			result.Skipped = append(result.Skipped, targets[i])
		}
	}

	return result, nil
}
