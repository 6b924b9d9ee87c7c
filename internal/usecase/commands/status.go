package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/pkg/clock"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

// resolveTimeout bounds a shared resolution once it no longer follows any caller's context.
const resolveTimeout = 15 * time.Second

type SweepReport struct {
	Scanned  int
	Resolved int
	Failed   int
}

type StatusResolver interface {
	// Resolve returns the current view of a request, persisting its terminal
	// transition when the policy says one is due.
	Resolve(ctx context.Context, requestID string) (*verification.Request, error)
	// SweepPending forces every request still pending past the policy's force window to resolve.
	SweepPending(ctx context.Context, limit int) (*SweepReport, error)
}

type statusResolverImpl struct {
	uow     shared.UnitOfWork
	policy  verification.StatusPolicy
	rng     verification.Randomizer
	clock   clock.Clock
	metrics Metrics
	group   singleflight.Group
}

func NewStatusResolver(
	uow shared.UnitOfWork,
	policy verification.StatusPolicy,
	rng verification.Randomizer,
	clk clock.Clock,
	metrics Metrics,
) StatusResolver {
	return &statusResolverImpl{
		uow:     uow,
		policy:  policy,
		rng:     rng,
		clock:   clk,
		metrics: metrics,
	}
}

func (r *statusResolverImpl) Resolve(ctx context.Context, requestID string) (*verification.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, invalid(verification.ErrEmptyRequestID)
	}

	return r.shared(ctx, requestID, func(ctx context.Context) (*verification.Request, error) {
		req, err := r.uow.CommandReads().RequestByID(ctx, requestID)
		if err != nil {
			return nil, storeErr(err, errs.ErrRequestNotFound)
		}
		return r.advance(ctx, req, SourcePoll)
	})
}

// shared runs fn once per request id across concurrent callers. fn gets a context
// detached from whichever caller started it, so a hang-up only abandons that
// caller's wait and never fails the callers that joined.
func (r *statusResolverImpl) shared(
	ctx context.Context,
	requestID string,
	fn func(context.Context) (*verification.Request, error),
) (*verification.Request, error) {
	ch := r.group.DoChan(requestID, func() (any, error) {
		detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), resolveTimeout)
		defer cancel()
		return fn(detached)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*verification.Request), nil
	}
}

// advance applies the policy decision to req. When another writer resolves the request
// first, the stored row wins and is returned instead of the local decision.
func (r *statusResolverImpl) advance(ctx context.Context, req *verification.Request, source string) (*verification.Request, error) {
	if req.IsTerminal() {
		return req, nil
	}

	now := r.clock.Now()
	decision, err := r.policy.Decide(req, now, r.rng)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decide verification status")
	}
	if decision.Status == verification.StatusPending {
		return req, nil
	}

	if _, err := req.Apply(decision.Status, decision.Result, decision.Error, now); err != nil {
		return nil, err
	}

	var stored *verification.Request
	won := false
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Requests().CompleteIfPending(ctx, tx.DB(), req)
		if derr != nil {
			return storeErr(derr, nil)
		}
		if ok {
			won = true
			stored = req
			return nil
		}
		stored, derr = tx.Reads().RequestByID(ctx, req.ID())
		return storeErr(derr, errs.ErrRequestNotFound)
	})
	if err != nil {
		return nil, err
	}

	if won {
		r.metrics.RequestResolved(stored.Status().String(), source)
		slog.Info("verification request resolved",
			"request_id", stored.ID(),
			"batch_id", stored.BatchID(),
			"status", stored.Status().String(),
			"source", source)
	} else {
		slog.Debug("verification request resolved by a concurrent writer",
			"request_id", stored.ID(),
			"status", stored.Status().String())
	}
	return stored, nil
}

func (r *statusResolverImpl) SweepPending(ctx context.Context, limit int) (*SweepReport, error) {
	if limit <= 0 {
		return nil, invalid(errs.New("sweep limit must be positive"))
	}

	cutoff := r.clock.Now().Add(-r.policy.ForceAfter)
	stale, err := r.uow.CommandReads().StalePendingRequests(ctx, cutoff, int32(limit))
	if err != nil {
		return nil, storeErr(err, nil)
	}

	report := &SweepReport{Scanned: len(stale)}
	for _, req := range stale {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		id := req.ID()
		resolved, err := r.shared(ctx, id, func(ctx context.Context) (*verification.Request, error) {
			return r.advance(ctx, req, SourceSweep)
		})
		if err != nil {
			report.Failed++
			slog.Warn("sweep failed to resolve verification request", "request_id", id, "error", err.Error())
			continue
		}
		if resolved.IsTerminal() {
			report.Resolved++
		}
	}
	return report, nil
}
