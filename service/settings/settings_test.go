package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithEnv("", env(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultCrossAccountRole, cfg.CrossAccountRole)
	assert.True(t, cfg.SendEmail)
	assert.Equal(t, DefaultMaxParallel, cfg.MaxParallel)
	assert.Empty(t, cfg.Regions)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
regions: [eu-north-1, eu-west-2, eu-north-1]
cross_account_role: AuditRole
email_signee: Security Team
send_email: false
email_sender: reports@example.com
email_cc: [cc@example.com]
recipient: ops@example.com
max_parallel: 8
`)

	cfg, err := LoadWithEnv(path, env(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"eu-north-1", "eu-west-2"}, cfg.Regions)
	assert.Equal(t, "AuditRole", cfg.CrossAccountRole)
	assert.Equal(t, "Security Team", cfg.EmailSignee)
	assert.False(t, cfg.SendEmail)
	assert.Equal(t, "reports@example.com", cfg.EmailSender)
	assert.Equal(t, []string{"cc@example.com"}, cfg.EmailCC)
	assert.Equal(t, "ops@example.com", cfg.Recipient)
	assert.Equal(t, 8, cfg.MaxParallel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "regions: [us-east-1]\nemail_signee: File\n")

	cfg, err := LoadWithEnv(path, env(map[string]string{
		"REGIONS":            "['eu-north-1', 'eu-west-2']",
		"EMAIL_SIGNEE":       "Env",
		"SEND_EMAIL":         "No",
		"EMAIL_BCC":          "a@example.com, b@example.com",
		"EMAIL_RETURN_PATH":  "bounces@example.com",
		"EMAIL_RECIPIENT":    "ops@example.com",
		"CROSS_ACCOUNT_ROLE": "",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"eu-north-1", "eu-west-2"}, cfg.Regions)
	assert.Equal(t, "Env", cfg.EmailSignee)
	assert.False(t, cfg.SendEmail)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.EmailBCC)
	assert.Equal(t, "bounces@example.com", cfg.EmailReturnPath)
	assert.Equal(t, "ops@example.com", cfg.Recipient)
	assert.Equal(t, DefaultCrossAccountRole, cfg.CrossAccountRole)
}

func TestParseSendEmail(t *testing.T) {
	for _, v := range []string{"No", "no", "false", "0", "OFF"} {
		assert.False(t, parseSendEmail(v), v)
	}
	for _, v := range []string{"Yes", "true", ""} {
		assert.True(t, parseSendEmail(v), v)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))
	assert.Error(t, err)

	_, err = LoadWithEnv(writeConfig(t, "regions: [unclosed"), env(nil))
	assert.Error(t, err)

	_, err = LoadWithEnv("", env(map[string]string{"REGIONS": "['eu-north-1'"}))
	assert.Error(t, err)

	_, err = LoadWithEnv("", env(map[string]string{"MAX_PARALLEL": "many"}))
	assert.Error(t, err)
}
