package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/flag"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/mailer"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/orchestrator"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/organizations"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/regions"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/scanner"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/settings"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/banner"
	htmloutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/html_output"
	jsonoutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/json_output"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/spinner"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// session is the configuration shared by the steps of one command.
type session struct {
	flags    model.Flags
	settings settings.Settings
	awsCfg   aws.Config
}

func (a *app) newSession(ctx context.Context, flags model.Flags) (*session, error) {
	st, err := a.deps.loadSettings(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	awsCfg, err := a.deps.cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &session{flags: flags, settings: st, awsCfg: awsCfg}, nil
}

func (a *app) runReport(ctx context.Context, flags model.Flags) error {
	s, err := a.newSession(ctx, flags)
	if err != nil {
		return err
	}

	a.startProgress(flags)
	defer spinner.StopSpinner()

	accounts, err := a.resolveAccounts(ctx, s)
	if err != nil {
		return err
	}

	regionList, err := a.resolveRegions(ctx, s)
	if err != nil {
		return err
	}

	scan := a.deps.newScanner(s.awsCfg, a.deps.cfgService, scanner.Options{
		AssumeRole: flags.OrgScan,
		RoleName:   s.roleName(),
		ExternalID: flags.ExternalID,
	})

	result, err := orchestrator.NewService(scan, orchestrator.Options{
		MaxParallel: s.maxParallel(),
		BestEffort:  flags.BestEffort,
	}).Run(ctx, accounts, regionList)
	if err != nil {
		return fmt.Errorf("port exposure scan failed: %w", err)
	}

	return a.deliver(ctx, s, model.RenderReportInput{
		Reports:    result.Reports,
		Skipped:    result.Skipped,
		Failures:   result.Failures,
		OutputFile: flags.OutputFile,
	})
}

func (a *app) runRender(ctx context.Context, flags model.Flags) error {
	export, err := jsonoutput.ReadScanExportFile(flags.Input)
	if err != nil {
		return err
	}

	st, err := a.deps.loadSettings(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s := &session{flags: flags, settings: st}

	// AWS credentials are only needed to send the report.
	if s.recipient() != "" && s.sendEmail() {
		s.awsCfg, err = a.deps.cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}
	}

	input := model.RenderReportInput{
		Reports:    export.Reports,
		Skipped:    export.Skipped,
		OutputFile: flags.OutputFile,
	}
	for _, f := range export.Failures {
		input.Failures = append(input.Failures, model.ScanFailure{
			Target: model.ScanTarget{Account: model.Account{ID: f.AccountID}, Region: f.Region},
			Err:    errors.New(f.Error),
		})
	}

	return a.deliver(ctx, s, input)
}

func (a *app) runAccounts(ctx context.Context, flags model.Flags) error {
	s, err := a.newSession(ctx, flags)
	if err != nil {
		return err
	}
	s.flags.OrgScan = true

	accounts, err := a.resolveAccounts(ctx, s)
	if err != nil {
		return err
	}
	return a.deps.newOutput(flags.Output).RenderAccounts(accounts)
}

func (a *app) runRegions(ctx context.Context, flags model.Flags) error {
	s, err := a.newSession(ctx, flags)
	if err != nil {
		return err
	}

	regionList, err := a.resolveRegions(ctx, s)
	if err != nil {
		return err
	}
	return a.deps.newOutput(flags.Output).RenderRegions(regionList)
}

// resolveAccounts lists the organization accounts with --org-scan and the
// caller's own account otherwise.
func (a *app) resolveAccounts(ctx context.Context, s *session) ([]model.Account, error) {
	if s.flags.OrgScan {
		accounts, err := a.deps.newOrganizations(s.awsCfg).ListActiveAccounts(ctx)
		if err != nil {
			return nil, err
		}
		accounts = organizations.FilterAccounts(accounts, s.flags.AccountIDs)
		if len(accounts) == 0 {
			return nil, fmt.Errorf("no active organization accounts to scan")
		}
		return accounts, nil
	}

	accountID, err := a.deps.newSTS(s.awsCfg).GetCallerAccountID(ctx)
	if err != nil {
		return nil, err
	}

	name := s.flags.AccountName
	if name == "" {
		name = accountID
	}
	return []model.Account{{ID: accountID, Name: name}}, nil
}

func (a *app) resolveRegions(ctx context.Context, s *session) ([]string, error) {
	return regions.Resolve(ctx, regions.Sources{
		Flag:       s.flags.Regions,
		AllRegions: s.flags.AllRegions,
		Configured: s.settings.Regions,
		Default:    s.awsCfg.Region,
	}, a.deps.newRegions(s.awsCfg))
}

// deliver renders the document, prints or saves it and emails it when a
// recipient is configured.
func (a *app) deliver(ctx context.Context, s *session, input model.RenderReportInput) error {
	rendered := htmloutput.NewRenderer(htmloutput.Options{Signee: s.signee()}).Render(input.Reports)

	input.Document = rendered.Document
	input.Risky = make(map[string]bool, len(rendered.Sections))
	for _, section := range rendered.Sections {
		if section.Risky {
			input.Risky[section.Anchor] = true
		}
	}

	if err := a.deps.newOutput(s.flags.Output).RenderReport(input); err != nil {
		return err
	}

	recipient := s.recipient()
	if recipient == "" {
		return nil
	}

	err := a.deps.newMailer(s.awsCfg, mailer.Options{
		Enabled:    s.sendEmail(),
		Sender:     s.settings.EmailSender,
		CC:         s.settings.EmailCC,
		BCC:        s.settings.EmailBCC,
		ReturnPath: s.settings.EmailReturnPath,
		Out:        a.statusOut(s.flags.Output),
	}).Send(ctx, model.Email{
		Recipient: recipient,
		Subject:   rendered.Document.Subject,
		Body:      rendered.Document.Body,
		HTML:      true,
		TicketID:  s.flags.TicketID,
	})
	if err != nil {
		return fmt.Errorf("failed to email report: %w", err)
	}
	return nil
}

// statusOut is where progress lines go. JSON output owns stdout.
func (a *app) statusOut(format string) io.Writer {
	if format == flag.OutputJSON {
		return a.errOut
	}
	return a.out
}

func (a *app) startProgress(flags model.Flags) {
	if !a.deps.interactive || flags.Output == flag.OutputJSON {
		return
	}
	banner.DrawBannerTitle()
	spinner.StartSpinner(spinner.DefaultMessage)
}

func (s *session) roleName() string {
	if s.flags.OrgRoleName != "" {
		return s.flags.OrgRoleName
	}
	return s.settings.CrossAccountRole
}

func (s *session) maxParallel() int {
	if s.flags.MaxParallel > 0 {
		return s.flags.MaxParallel
	}
	return s.settings.MaxParallel
}

func (s *session) signee() string {
	if s.flags.Signee != "" {
		return s.flags.Signee
	}
	return s.settings.EmailSignee
}

func (s *session) recipient() string {
	if s.flags.Recipient != "" {
		return s.flags.Recipient
	}
	return s.settings.Recipient
}

func (s *session) sendEmail() bool {
	return s.settings.SendEmail && !s.flags.NoEmail
}
