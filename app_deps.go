package main

import (
	awsconfig "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aws_config"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/mailer"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/organizations"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/output"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/regions"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/scanner"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/settings"
	awssts "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/sts"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/terminal"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// deps are the service constructors used by the commands. Tests replace them.
type deps struct {
	cfgService       awsconfig.Service
	loadSettings     func(path string) (settings.Settings, error)
	newSTS           func(cfg aws.Config) awssts.Service
	newOrganizations func(cfg aws.Config) organizations.Service
	newRegions       func(cfg aws.Config) regions.Service
	newScanner       func(base aws.Config, cfgService awsconfig.Service, opts scanner.Options) scanner.Service
	newMailer        func(cfg aws.Config, opts mailer.Options) mailer.Service
	newOutput        func(format string) output.Service
	interactive      bool // draw the banner and spinner
}

func defaultDeps() deps {
	return deps{
		cfgService:       awsconfig.NewService(),
		loadSettings:     settings.Load,
		newSTS:           awssts.NewService,
		newOrganizations: organizations.NewService,
		newRegions:       regions.NewService,
		newScanner:       scanner.NewService,
		newMailer:        mailer.NewService,
		newOutput:        output.NewService,
		interactive:      terminal.IsInteractive(),
	}
}
