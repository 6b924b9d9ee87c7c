package oracle

import (
	"context"
	"encoding/binary"
	"sync/atomic"

	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/commands"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// SimulatedClient stands in for the oracle network during development. It never leaves
// the process and answers with a deterministic-looking keccak transaction hash.
type SimulatedClient struct {
	nonce atomic.Uint64
}

func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{}
}

func (c *SimulatedClient) RequestVerification(ctx context.Context, req commands.OracleRequest) (*commands.OracleReceipt, error) {
	if err := ctx.Err(); err != nil {
		if errs.Is(err, context.DeadlineExceeded) {
			return nil, errs.Mark(err, errs.ErrOracleTimeout)
		}
		return nil, errs.Mark(err, errs.ErrTransientOracle)
	}

	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], c.nonce.Add(1))
	var batch [8]byte
	binary.BigEndian.PutUint64(batch[:], uint64(req.BatchID))

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(req.RequestID))
	h.Write(batch[:])
	h.Write([]byte(req.VerificationType))
	h.Write([]byte(req.Recipient))
	h.Write([]byte(req.Job.DonID))
	h.Write(nonce[:])

	return &commands.OracleReceipt{
		TransactionHash: common.BytesToHash(h.Sum(nil)).Hex(),
	}, nil
}
