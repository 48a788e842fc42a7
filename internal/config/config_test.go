package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearBankEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BANK_DATA_FILE", "BANK_PORT", "BANK_LOG_LEVEL", "BANK_LOG_FILE", "BANK_WORKERS"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	clearBankEnv(t)

	cfg, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, &Config{
		DataFile: "data.json",
		Port:     "9446",
		LogLevel: "info",
		Workers:  1,
	}, cfg)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	clearBankEnv(t)
	t.Setenv("BANK_DATA_FILE", "/tmp/accounts.json")
	t.Setenv("BANK_PORT", "8080")
	t.Setenv("BANK_LOG_LEVEL", "debug")
	t.Setenv("BANK_LOG_FILE", "/tmp/bank.log")
	t.Setenv("BANK_WORKERS", "2")

	cfg, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/accounts.json", cfg.DataFile)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/bank.log", cfg.LogFile)
	assert.Equal(t, 2, cfg.Workers)
}

func TestProcessEnvironmentVariables_DotEnv(t *testing.T) {
	clearBankEnv(t)
	os.Unsetenv("BANK_DATA_FILE")
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("BANK_DATA_FILE=from-dotenv.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BANK_DATA_FILE") })

	cfg, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.DataFile)
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	cases := map[string]string{
		"BANK_PORT":      "not-a-port",
		"BANK_LOG_LEVEL": "loud",
		"BANK_WORKERS":   "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearBankEnv(t)
			t.Setenv(key, value)

			_, err := ProcessEnvironmentVariables()
			assert.Error(t, err)
		})
	}
}
