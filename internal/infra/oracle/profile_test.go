//go:build unit

package oracle_test

import (
	"os"
	"path/filepath"
	"testing"

	"coffee-verifier/internal/infra/oracle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProfile_Default(t *testing.T) {
	p, err := oracle.LoadProfile("")
	require.NoError(t, err)

	job := p.Job()
	assert.Equal(t, "coffee-batch-verification", job.Name)
	assert.Equal(t, "fun-ethereum-sepolia-1", job.DonID)
	assert.Equal(t, uint32(300000), job.CallbackGasLimit)
	assert.Contains(t, job.Source, "Functions.makeHttpRequest")
	assert.Equal(t, "sepolia", job.Args["network"])
}

func TestLoadProfile_File(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		expectErr string
	}{
		{
			name: "valid profile",
			body: "Name = \"inventory\"\nDonID = \"don-1\"\nCallbackGasLimit = 1000\nSource = \"return 1\"\n",
		},
		{
			name:      "unknown key",
			body:      "Name = \"inventory\"\nDonID = \"don-1\"\nCallbackGasLimit = 1000\nSource = \"return 1\"\nGasPrice = 3\n",
			expectErr: "unknown oracle profile keys: GasPrice",
		},
		{
			name:      "missing source",
			body:      "Name = \"inventory\"\nDonID = \"don-1\"\nCallbackGasLimit = 1000\n",
			expectErr: "Source is required",
		},
		{
			name:      "zero gas limit",
			body:      "Name = \"inventory\"\nDonID = \"don-1\"\nSource = \"return 1\"\n",
			expectErr: "CallbackGasLimit must be positive",
		},
		{
			name:      "not toml",
			body:      "Name = ",
			expectErr: "failed to decode oracle profile",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := oracle.LoadProfile(writeProfile(t, tc.body))
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "inventory", p.Name)
		})
	}
}

func TestProfile_JobCopiesArgs(t *testing.T) {
	p, err := oracle.LoadProfile("")
	require.NoError(t, err)

	job := p.Job()
	job.Args["network"] = "mainnet"
	assert.Equal(t, "sepolia", p.Args["network"])
}
