// Package settings loads the report settings from a YAML file and the
// environment.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/mailer"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/regions"
	"gopkg.in/yaml.v3"
)

// DefaultCrossAccountRole is the role assumed in organization member accounts.
const DefaultCrossAccountRole = "OrganizationAccountAccessRole"

// DefaultMaxParallel is the default number of concurrent region scans.
const DefaultMaxParallel = 3

// Settings are the deployment settings of the report.
type Settings struct {
	Regions          []string `yaml:"regions"`
	CrossAccountRole string   `yaml:"cross_account_role"`
	EmailSignee      string   `yaml:"email_signee"`
	SendEmail        bool     `yaml:"send_email"`
	EmailSender      string   `yaml:"email_sender"`
	EmailCC          []string `yaml:"email_cc"`
	EmailBCC         []string `yaml:"email_bcc"`
	EmailReturnPath  string   `yaml:"email_return_path"`
	Recipient        string   `yaml:"recipient"`
	MaxParallel      int      `yaml:"max_parallel"`
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		CrossAccountRole: DefaultCrossAccountRole,
		SendEmail:        true,
		MaxParallel:      DefaultMaxParallel,
	}
}

// Load reads path, when set, over the defaults and then applies the
// environment.
func Load(path string) (Settings, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment.
func LoadWithEnv(path string, lookup LookupFunc) (Settings, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Settings{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Settings{}, err
	}

	cfg.Regions = regions.Dedupe(cfg.Regions)
	if cfg.CrossAccountRole == "" {
		cfg.CrossAccountRole = DefaultCrossAccountRole
	}
	if cfg.MaxParallel < 1 {
		cfg.MaxParallel = DefaultMaxParallel
	}

	return cfg, nil
}

func (s *Settings) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup("REGIONS"); ok {
		parsed, err := regions.Parse(v)
		if err != nil {
			return fmt.Errorf("REGIONS: %w", err)
		}
		s.Regions = parsed
	}

	setString(lookup, "CROSS_ACCOUNT_ROLE", &s.CrossAccountRole)
	setString(lookup, "EMAIL_SIGNEE", &s.EmailSignee)
	setString(lookup, "EMAIL_SENDER", &s.EmailSender)
	setString(lookup, "EMAIL_RETURN_PATH", &s.EmailReturnPath)
	setString(lookup, "EMAIL_RECIPIENT", &s.Recipient)

	if v, ok := lookup("EMAIL_CC"); ok {
		s.EmailCC = mailer.SplitAddresses(v)
	}
	if v, ok := lookup("EMAIL_BCC"); ok {
		s.EmailBCC = mailer.SplitAddresses(v)
	}

	if v, ok := lookup("SEND_EMAIL"); ok {
		s.SendEmail = parseSendEmail(v)
	}

	if v, ok := lookup("MAX_PARALLEL"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("MAX_PARALLEL: %w", err)
		}
		s.MaxParallel = n
	}

	return nil
}

func setString(lookup LookupFunc, key string, dst *string) {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

// parseSendEmail treats "No" and false-like values as disabled.
func parseSendEmail(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "no", "false", "0", "off":
		return false
	}
	return true
}
