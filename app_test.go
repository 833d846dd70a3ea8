package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	awsconfig "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/aws_config"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/mailer"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/organizations"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/output"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/regions"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/scanner"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/settings"
	awssts "github.com/OpenSecOps-Org/Foundation-instance-port-report/service/sts"
	jsonoutput "github.com/OpenSecOps-Org/Foundation-instance-port-report/shared/json_output"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

type fakeCfgService struct {
	loads int
	err   error
}

func (f *fakeCfgService) GetAWSCfg(context.Context, string, string) (aws.Config, error) {
	f.loads++
	return aws.Config{Region: "eu-north-1"}, f.err
}

func (f *fakeCfgService) AssumeRoleCfg(base aws.Config, _, _, _, region string) aws.Config {
	base.Region = region
	return base
}

type fakeSTS struct{ account string }

func (f fakeSTS) GetCallerAccountID(context.Context) (string, error) { return f.account, nil }

type fakeOrganizations struct{ accounts []model.Account }

func (f fakeOrganizations) ListActiveAccounts(context.Context) ([]model.Account, error) {
	return f.accounts, nil
}

type fakeRegions struct{ regions []string }

func (f fakeRegions) Discover(context.Context) ([]string, error) { return f.regions, nil }

type fakeScanner struct {
	reports map[string]model.AccountRegionReport
}

func (f fakeScanner) ScanRegion(_ context.Context, target model.ScanTarget) (model.AccountRegionReport, bool, error) {
	report, ok := f.reports[target.Account.ID+"/"+target.Region]
	return report, ok, nil
}

type fakeMailer struct{ sent []model.Email }

func (f *fakeMailer) Send(_ context.Context, email model.Email) error {
	f.sent = append(f.sent, email)
	return nil
}

type fakeSES struct{ sent int }

func (f *fakeSES) SendEmail(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.sent++
	return &ses.SendEmailOutput{MessageId: aws.String("msg")}, nil
}

type fakeOutput struct {
	format   string
	stdout   io.Writer
	report   *model.RenderReportInput
	accounts []model.Account
	regions  []string
}

func (f *fakeOutput) RenderReport(input model.RenderReportInput) error {
	f.report = &input
	if f.format == "json" {
		return jsonoutput.WriteJSON(f.stdout, jsonoutput.BuildScanExport(input, "now"))
	}
	return nil
}

func (f *fakeOutput) RenderAccounts(accounts []model.Account) error {
	f.accounts = accounts
	return nil
}

func (f *fakeOutput) RenderRegions(regions []string) error {
	f.regions = regions
	return nil
}

func (f *fakeOutput) StopSpinner() {}

type harness struct {
	cfg         *fakeCfgService
	settings    settings.Settings
	scanOptions []scanner.Options
	mailOptions []mailer.Options
	mail        *fakeMailer
	ses         *fakeSES // when set, the real mailer sends through it
	out         *fakeOutput
	stdout      bytes.Buffer
	stderr      bytes.Buffer
}

func openReport(accountID, region string) model.AccountRegionReport {
	return model.AccountRegionReport{
		AccountID:   accountID,
		AccountName: "acct-" + accountID,
		Region:      region,
		Instances:   []model.InstanceRecord{{ID: "i-1", SecurityGroupIDs: []string{"sg-1"}}},
		SecurityGroups: []model.SecurityGroupRecord{{
			ID: "sg-1",
			IPPermissions: []model.PermissionRecord{{
				Protocol: "tcp",
				FromPort: aws.Int32(22),
				ToPort:   aws.Int32(22),
				IPRanges: []model.IPRange{{CidrIP: "0.0.0.0/0"}},
			}},
			InstanceIDs: []string{"i-1"},
		}},
	}
}

func newHarness() *harness {
	st := settings.Default()
	st.Recipient = "ops@example.com"
	st.EmailSignee = "Security Team"
	return &harness{
		cfg:      &fakeCfgService{},
		settings: st,
		mail:     &fakeMailer{},
		out:      &fakeOutput{},
	}
}

func (h *harness) execute(args ...string) error {
	d := deps{
		cfgService:   h.cfg,
		loadSettings: func(string) (settings.Settings, error) { return h.settings, nil },
		newSTS:       func(aws.Config) awssts.Service { return fakeSTS{account: "111111111111"} },
		newOrganizations: func(aws.Config) organizations.Service {
			return fakeOrganizations{accounts: []model.Account{{ID: "111111111111", Name: "dev"}, {ID: "222222222222", Name: "prod"}}}
		},
		newRegions: func(aws.Config) regions.Service { return fakeRegions{regions: []string{"us-east-1"}} },
		newScanner: func(_ aws.Config, _ awsconfig.Service, opts scanner.Options) scanner.Service {
			h.scanOptions = append(h.scanOptions, opts)
			return fakeScanner{reports: map[string]model.AccountRegionReport{
				"111111111111/eu-north-1": openReport("111111111111", "eu-north-1"),
				"222222222222/eu-north-1": openReport("222222222222", "eu-north-1"),
			}}
		},
		newMailer: func(_ aws.Config, opts mailer.Options) mailer.Service {
			h.mailOptions = append(h.mailOptions, opts)
			if h.ses != nil {
				return mailer.NewServiceWithClient(h.ses, opts)
			}
			return h.mail
		},
		newOutput: func(format string) output.Service {
			h.out.format = format
			h.out.stdout = &h.stdout
			return h.out
		},
	}

	a := newApp(d, model.VersionInfo{Version: "1.2.3", Commit: "abc123", Date: "2025-01-01"})
	a.out = &h.stdout
	a.errOut = &h.stderr
	root := a.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestVersionFlag(t *testing.T) {
	h := newHarness()
	if err := h.execute("--version"); err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	for _, want := range []string{"1.2.3", "abc123", "2025-01-01"} {
		if !strings.Contains(h.stdout.String(), want) {
			t.Errorf("version output missing %q; got:\n%s", want, h.stdout.String())
		}
	}
	if h.cfg.loads != 0 {
		t.Fatalf("--version must not load AWS config")
	}
}

func TestReportCallerAccount(t *testing.T) {
	h := newHarness()
	if err := h.execute("report", "--regions", "eu-north-1,us-east-1", "--account-name", "dev", "--ticket-id", "SEC-7"); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if len(h.scanOptions) != 1 || h.scanOptions[0].AssumeRole {
		t.Fatalf("caller account must be scanned without role assumption: %+v", h.scanOptions)
	}

	in := h.out.report
	if in == nil {
		t.Fatalf("report was not rendered")
	}
	if len(in.Reports) != 1 || in.Reports[0].AccountID != "111111111111" {
		t.Fatalf("unexpected reports: %+v", in.Reports)
	}
	if len(in.Skipped) != 1 || in.Skipped[0].Region != "us-east-1" || in.Skipped[0].Account.Name != "dev" {
		t.Fatalf("unexpected skipped targets: %+v", in.Skipped)
	}
	if !in.Risky["111111111111_eu-north-1"] {
		t.Fatalf("open port section must be flagged: %+v", in.Risky)
	}
	if !strings.Contains(in.Document.Body, "from Security Team") {
		t.Fatalf("document is missing the signee")
	}

	if len(h.mail.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(h.mail.sent))
	}
	sent := h.mail.sent[0]
	if sent.Recipient != "ops@example.com" || sent.TicketID != "SEC-7" || !sent.HTML {
		t.Fatalf("unexpected email: %+v", sent)
	}
	if !h.mailOptions[0].Enabled {
		t.Fatalf("email should be enabled by default")
	}
}

func TestReportJSONKeepsStdoutMachineReadable(t *testing.T) {
	for _, sendEmail := range []bool{true, false} {
		h := newHarness()
		h.ses = &fakeSES{}
		h.settings.SendEmail = sendEmail

		if err := h.execute("--output", "json", "--regions", "eu-north-1"); err != nil {
			t.Fatalf("report failed: %v", err)
		}

		dec := json.NewDecoder(&h.stdout)
		var export model.ScanExportJSON
		if err := dec.Decode(&export); err != nil {
			t.Fatalf("stdout is not JSON: %v", err)
		}
		if len(export.Reports) != 1 {
			t.Fatalf("unexpected export: %+v", export)
		}
		var trailing json.RawMessage
		if err := dec.Decode(&trailing); err != io.EOF {
			t.Fatalf("stdout has data after the JSON document: %q (%v)", trailing, err)
		}

		want := "Email disabled."
		if sendEmail {
			want = "Report sent to ops@example.com"
		}
		if !strings.Contains(h.stderr.String(), want) {
			t.Fatalf("expected %q on stderr, got %q", want, h.stderr.String())
		}
	}
}

func TestReportTableKeepsMailStatusOnStdout(t *testing.T) {
	h := newHarness()
	h.ses = &fakeSES{}

	if err := h.execute("--regions", "eu-north-1"); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if h.ses.sent != 1 || !strings.Contains(h.stdout.String(), "Report sent to ops@example.com") {
		t.Fatalf("expected mail status on stdout, got %q", h.stdout.String())
	}
	if h.stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", h.stderr.String())
	}
}

func TestReportOrgScan(t *testing.T) {
	h := newHarness()
	h.settings.CrossAccountRole = "AuditRole"

	err := h.execute("--org-scan", "--account-id", "222222222222", "--regions", "eu-north-1", "--external-id", "ext", "--no-email")
	if err != nil {
		t.Fatalf("org scan failed: %v", err)
	}

	opts := h.scanOptions[0]
	if !opts.AssumeRole || opts.RoleName != "AuditRole" || opts.ExternalID != "ext" {
		t.Fatalf("unexpected scanner options: %+v", opts)
	}
	if len(h.out.report.Reports) != 1 || h.out.report.Reports[0].AccountID != "222222222222" {
		t.Fatalf("account filter not applied: %+v", h.out.report.Reports)
	}
	if h.mailOptions[0].Enabled {
		t.Fatalf("--no-email must disable sending")
	}
}

func TestReportRoleFlagOverridesSettings(t *testing.T) {
	h := newHarness()
	if err := h.execute("--org-scan", "--org-role-name", "FlagRole", "--regions", "eu-north-1"); err != nil {
		t.Fatalf("org scan failed: %v", err)
	}
	if h.scanOptions[0].RoleName != "FlagRole" {
		t.Fatalf("unexpected role: %s", h.scanOptions[0].RoleName)
	}
}

func TestReportWithoutRecipientSendsNothing(t *testing.T) {
	h := newHarness()
	h.settings.Recipient = ""

	if err := h.execute("--regions", "eu-north-1"); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(h.mailOptions) != 0 {
		t.Fatalf("mailer must not be built without a recipient")
	}
}

func TestAccountsCommand(t *testing.T) {
	h := newHarness()
	if err := h.execute("accounts"); err != nil {
		t.Fatalf("accounts failed: %v", err)
	}
	if len(h.out.accounts) != 2 {
		t.Fatalf("unexpected accounts: %+v", h.out.accounts)
	}
}

func TestRegionsCommand(t *testing.T) {
	h := newHarness()

	if err := h.execute("regions"); err != nil {
		t.Fatalf("regions failed: %v", err)
	}
	if len(h.out.regions) != 1 || h.out.regions[0] != "eu-north-1" {
		t.Fatalf("expected the default region, got %v", h.out.regions)
	}

	if err := h.execute("regions", "--all-regions"); err != nil {
		t.Fatalf("regions failed: %v", err)
	}
	if len(h.out.regions) != 1 || h.out.regions[0] != "us-east-1" {
		t.Fatalf("expected discovered regions, got %v", h.out.regions)
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	export := jsonoutput.BuildScanExport(model.RenderReportInput{
		Reports: []model.AccountRegionReport{openReport("111111111111", "eu-north-1")},
		Failures: []model.ScanFailure{{
			Target: model.ScanTarget{Account: model.Account{ID: "333333333333"}, Region: "eu-west-1"},
			Err:    errors.New("AccessDenied"),
		}},
	}, "now")
	if err := jsonoutput.WriteJSON(f, export); err != nil {
		t.Fatal(err)
	}
	f.Close()

	h := newHarness()
	h.settings.Recipient = ""
	if err := h.execute("render", "--input", path, "--output", "html"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if h.cfg.loads != 0 {
		t.Fatalf("render without email must not load AWS config")
	}
	in := h.out.report
	if len(in.Reports) != 1 || !in.Risky["111111111111_eu-north-1"] {
		t.Fatalf("unexpected render input: %+v", in)
	}
	if len(in.Failures) != 1 || in.Failures[0].Err.Error() != "AccessDenied" {
		t.Fatalf("failures not carried over: %+v", in.Failures)
	}
}

func TestRenderCommandRequiresInput(t *testing.T) {
	if err := newHarness().execute("render"); err == nil {
		t.Fatalf("expected error without --input")
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	err := newHarness().execute("--output", "pdf")
	if err == nil || !strings.Contains(err.Error(), "pdf") {
		t.Fatalf("expected invalid format error, got %v", err)
	}
}

func TestAWSConfigErrorIsReturned(t *testing.T) {
	h := newHarness()
	h.cfg.err = errors.New("no credentials")

	err := h.execute("--regions", "eu-north-1")
	if err == nil || !strings.Contains(err.Error(), "no credentials") {
		t.Fatalf("expected AWS config error, got %v", err)
	}
}
