package scanner

import (
	"context"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	awsconfig "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aws_config"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/ec2inventory"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// InventoryFactory builds the EC2 inventory reader for a scoped config.
type InventoryFactory func(cfg aws.Config) ec2inventory.Service

// Options configures how member accounts are reached.
type Options struct {
	// AssumeRole is set when scanning organization members. Otherwise the
	// base credentials are used as they are.
	AssumeRole bool
	RoleName   string
	ExternalID string
}

// Service scans one account/region pair.
type Service interface {
	ScanRegion(ctx context.Context, target model.ScanTarget) (model.AccountRegionReport, bool, error)
}

type service struct {
	base         aws.Config
	cfgService   awsconfig.Service
	newInventory InventoryFactory
	opts         Options
}
