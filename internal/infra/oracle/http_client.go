package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/commands"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const maxErrorBody = 2048

type HTTPClientConfig struct {
	GatewayURL string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint
}

// HTTPClient submits jobs to an oracle gateway over HTTP. Network errors and 5xx
// responses are retried with exponential backoff; 4xx responses are final.
type HTTPClient struct {
	cfg    HTTPClientConfig
	client *http.Client
	// newBackOff is swapped in tests to avoid real sleeps.
	newBackOff func() backoff.BackOff
}

func NewHTTPClient(cfg HTTPClientConfig, client *http.Client) *HTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	cfg.GatewayURL = strings.TrimRight(cfg.GatewayURL, "/")
	return &HTTPClient{
		cfg:    cfg,
		client: client,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			return b
		},
	}
}

type gatewayRequest struct {
	RequestID        string            `json:"requestId"`
	BatchID          int64             `json:"batchId"`
	VerificationType string            `json:"verificationType"`
	Recipient        string            `json:"recipient,omitempty"`
	Job              string            `json:"job"`
	DonID            string            `json:"donId"`
	SubscriptionID   uint64            `json:"subscriptionId"`
	CallbackGasLimit uint32            `json:"callbackGasLimit"`
	Source           string            `json:"source"`
	Args             []string          `json:"args"`
	Config           map[string]string `json:"config,omitempty"`
}

type gatewayResponse struct {
	TransactionHash string `json:"transactionHash"`
}

func (c *HTTPClient) RequestVerification(ctx context.Context, req commands.OracleRequest) (*commands.OracleReceipt, error) {
	body, err := json.Marshal(gatewayRequest{
		RequestID:        req.RequestID,
		BatchID:          req.BatchID,
		VerificationType: req.VerificationType,
		Recipient:        req.Recipient,
		Job:              req.Job.Name,
		DonID:            req.Job.DonID,
		SubscriptionID:   req.Job.SubscriptionID,
		CallbackGasLimit: req.Job.CallbackGasLimit,
		Source:           req.Job.Source,
		Args:             []string{fmt.Sprint(req.BatchID), req.VerificationType},
		Config:           req.Job.Args,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to encode oracle request"), errs.ErrTransientOracle)
	}

	attempt := 0
	operation := func() (*commands.OracleReceipt, error) {
		attempt++
		receipt, err := c.send(ctx, body)
		if err != nil {
			slog.Warn("oracle gateway attempt failed",
				"request_id", req.RequestID,
				"attempt", attempt,
				"error", err.Error())
		}
		return receipt, err
	}

	receipt, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.cfg.MaxRetries+1),
	)
	if err != nil {
		if errs.Is(err, context.DeadlineExceeded) {
			return nil, errs.Mark(errs.Wrap(err, "oracle gateway timed out"), errs.ErrOracleTimeout)
		}
		return nil, errs.Mark(errs.Wrap(err, "oracle gateway request failed"), errs.ErrTransientOracle)
	}
	return receipt, nil
}

func (c *HTTPClient) send(ctx context.Context, body []byte) (*commands.OracleReceipt, error) {
	attemptCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.GatewayURL+"/requests", bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("oracle gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, backoff.Permanent(fmt.Errorf("oracle gateway rejected request with %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode oracle gateway response: %w", err))
	}
	raw, err := hexutil.Decode(out.TransactionHash)
	if err != nil || len(raw) != common.HashLength {
		return nil, backoff.Permanent(fmt.Errorf("oracle gateway returned malformed transaction hash %q", out.TransactionHash))
	}

	return &commands.OracleReceipt{TransactionHash: common.BytesToHash(raw).Hex()}, nil
}
