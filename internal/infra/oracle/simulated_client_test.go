//go:build unit

package oracle_test

import (
	"context"
	"testing"
	"time"

	"coffee-verifier/internal/infra/oracle"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/commands"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedClient_RequestVerification(t *testing.T) {
	c := oracle.NewSimulatedClient()
	req := commands.OracleRequest{RequestID: "req_1", BatchID: 7, VerificationType: "reserve"}

	first, err := c.RequestVerification(context.Background(), req)
	require.NoError(t, err)
	second, err := c.RequestVerification(context.Background(), req)
	require.NoError(t, err)

	raw, err := hexutil.Decode(first.TransactionHash)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.NotEqual(t, first.TransactionHash, second.TransactionHash, "each submission gets its own transaction")
}

func TestSimulatedClient_ContextErrors(t *testing.T) {
	c := oracle.NewSimulatedClient()

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err := c.RequestVerification(expired, commands.OracleRequest{RequestID: "req_1", BatchID: 7})
	assert.True(t, errs.Is(err, errs.ErrOracleTimeout))

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	_, err = c.RequestVerification(cancelled, commands.OracleRequest{RequestID: "req_1", BatchID: 7})
	assert.True(t, errs.Is(err, errs.ErrTransientOracle))
}
