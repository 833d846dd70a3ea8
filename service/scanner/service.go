// Package scanner collects the exposure report of a single account/region.
package scanner

import (
	"context"
	"fmt"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aggregator"
	awsconfig "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aws_config"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/ec2inventory"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// NewService creates a scanner reading through base, assuming roles with
// cfgService when opts.AssumeRole is set.
func NewService(base aws.Config, cfgService awsconfig.Service, opts Options) Service {
	return NewServiceWithFactory(base, cfgService, ec2inventory.NewService, opts)
}

// NewServiceWithFactory creates a scanner with a custom inventory factory.
func NewServiceWithFactory(base aws.Config, cfgService awsconfig.Service, factory InventoryFactory, opts Options) Service {
	return &service{
		base:         base,
		cfgService:   cfgService,
		newInventory: factory,
		opts:         opts,
	}
}

// ScanRegion lists the instances of target and aggregates them with their
// security groups. ok is false when the region holds no instance.
func (s *service) ScanRegion(ctx context.Context, target model.ScanTarget) (model.AccountRegionReport, bool, error) {
	inventory := s.newInventory(s.regionConfig(target))

	instances, err := inventory.ListInstances(ctx)
	if err != nil {
		return model.AccountRegionReport{}, false, err
	}

	report, ok, err := aggregator.Aggregate(ctx, model.RegionInventory{
		AccountID:   target.Account.ID,
		AccountName: target.Account.Name,
		Region:      target.Region,
		Instances:   instances,
	}, inventory)
	if err != nil {
		return model.AccountRegionReport{}, false, fmt.Errorf("aggregate security groups: %w", err)
	}

	return report, ok, nil
}

func (s *service) regionConfig(target model.ScanTarget) aws.Config {
	if s.opts.AssumeRole {
		return s.cfgService.AssumeRoleCfg(s.base, target.Account.ID, s.opts.RoleName, s.opts.ExternalID, target.Region)
	}

	cfg := s.base.Copy()
	cfg.Region = target.Region
	return cfg
}
