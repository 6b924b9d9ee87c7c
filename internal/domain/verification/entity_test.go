//go:build unit

package verification_test

import (
	"testing"
	"time"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req, err := verification.NewRequest("req_1", 7, verification.TypeReserve, submittedAt)
		require.NoError(t, err)

		assert.Equal(t, "req_1", req.ID())
		assert.Equal(t, int64(7), req.BatchID())
		assert.Equal(t, verification.TypeReserve, req.Type())
		assert.Equal(t, verification.StatusPending, req.Status())
		assert.Equal(t, submittedAt, req.SubmittedAt())
		assert.Nil(t, req.CompletedAt())
		assert.Nil(t, req.Result())
		assert.Nil(t, req.Error())
		assert.Nil(t, req.TransactionHash())
		assert.False(t, req.IsTerminal())
	})

	tests := []struct {
		name    string
		id      string
		batchID int64
		vType   verification.Type
		errIs   error
	}{
		{name: "empty id", id: "", batchID: 7, vType: verification.TypeReserve, errIs: verification.ErrEmptyRequestID},
		{name: "whitespace id", id: "   ", batchID: 7, vType: verification.TypeReserve, errIs: verification.ErrEmptyRequestID},
		{name: "zero batch id", id: "req_1", batchID: 0, vType: verification.TypeReserve, errIs: verification.ErrInvalidBatchID},
		{name: "negative batch id", id: "req_1", batchID: -3, vType: verification.TypeReserve, errIs: verification.ErrInvalidBatchID},
		{name: "unknown type", id: "req_1", batchID: 7, vType: verification.Type("audit"), errIs: verification.ErrInvalidType},
		{name: "inventory type", id: "req_1", batchID: 7, vType: verification.TypeInventory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := verification.NewRequest(tt.id, tt.batchID, tt.vType, submittedAt)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, req)
		})
	}
}

func TestReconstructRequest(t *testing.T) {
	completed := submittedAt.Add(time.Minute)

	t.Run("pending with completedAt is rejected", func(t *testing.T) {
		_, err := builder.NewVerificationBuilder().With(func(b *builder.VerificationBuilder) {
			b.CompletedAt = &completed
		}).BuildDomain()
		require.ErrorIs(t, err, verification.ErrCompletionMismatch)
	})

	t.Run("fulfilled without completedAt is rejected", func(t *testing.T) {
		_, err := builder.NewVerificationBuilder().With(func(b *builder.VerificationBuilder) {
			b.Status = verification.StatusFulfilled
		}).BuildDomain()
		require.ErrorIs(t, err, verification.ErrCompletionMismatch)
	})

	t.Run("failed with completedAt is accepted", func(t *testing.T) {
		req, err := builder.NewVerificationBuilder().AsFailed("Data source unavailable", completed).BuildDomain()
		require.NoError(t, err)
		assert.True(t, req.IsTerminal())
		require.NotNil(t, req.Error())
		assert.Equal(t, "Data source unavailable", *req.Error())
	})
}

func TestRequest_Transitions(t *testing.T) {
	at := submittedAt.Add(95 * time.Second)
	result, err := verification.NewResult(640, 2450, "500g", builder.DefaultMetadataHash, true)
	require.NoError(t, err)

	t.Run("fulfill sets result and completion", func(t *testing.T) {
		req := builder.NewVerificationBuilder().MustBuildDomain()

		require.NoError(t, req.Fulfill(result, at))

		assert.Equal(t, verification.StatusFulfilled, req.Status())
		require.NotNil(t, req.CompletedAt())
		assert.Equal(t, at, *req.CompletedAt())
		assert.Same(t, result, req.Result())
		assert.Nil(t, req.Error())
	})

	t.Run("fail defaults the message", func(t *testing.T) {
		req := builder.NewVerificationBuilder().MustBuildDomain()

		require.NoError(t, req.Fail("  ", at))

		assert.Equal(t, verification.StatusFailed, req.Status())
		require.NotNil(t, req.Error())
		assert.Equal(t, "verification failed", *req.Error())
		assert.Nil(t, req.Result())
	})

	t.Run("terminal request never reverts", func(t *testing.T) {
		req := builder.NewVerificationBuilder().AsFulfilled(at).MustBuildDomain()
		before := req.Result()

		assert.ErrorIs(t, req.Fail("late failure", at.Add(time.Second)), verification.ErrAlreadyResolved)
		assert.ErrorIs(t, req.Fulfill(result, at.Add(time.Second)), verification.ErrAlreadyResolved)

		assert.Equal(t, verification.StatusFulfilled, req.Status())
		assert.Equal(t, at, *req.CompletedAt())
		assert.Same(t, before, req.Result())
	})
}

func TestRequest_TimestampsKeepStorePrecision(t *testing.T) {
	precise := submittedAt.Add(95*time.Second + 123456789*time.Nanosecond)
	want := submittedAt.Add(95*time.Second + 123456*time.Microsecond)

	t.Run("submission time", func(t *testing.T) {
		req, err := verification.NewRequest("req_1", 7, verification.TypeReserve, precise)
		require.NoError(t, err)
		assert.Equal(t, want, req.SubmittedAt())
	})

	t.Run("fulfillment time", func(t *testing.T) {
		req := builder.NewVerificationBuilder().MustBuildDomain()
		result, err := verification.NewResult(640, 2450, "500g", builder.DefaultMetadataHash, true)
		require.NoError(t, err)

		require.NoError(t, req.Fulfill(result, precise))
		assert.Equal(t, want, *req.CompletedAt())
	})

	t.Run("failure time", func(t *testing.T) {
		req := builder.NewVerificationBuilder().MustBuildDomain()

		changed, err := req.Apply(verification.StatusFailed, nil, "timeout", precise)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, want, *req.CompletedAt())
		assert.Zero(t, req.CompletedAt().Nanosecond()%int(verification.TimestampPrecision))
	})
}

func TestRequest_Apply(t *testing.T) {
	at := submittedAt.Add(time.Minute)
	result, err := verification.NewResult(1, 1000, "250g", "", true)
	require.NoError(t, err)

	tests := []struct {
		name        string
		build       func() *verification.Request
		status      verification.Status
		wantChanged bool
		wantStatus  verification.Status
		errIs       error
	}{
		{
			name:       "pending to pending is a no-op",
			build:      builder.NewVerificationBuilder().MustBuildDomain,
			status:     verification.StatusPending,
			wantStatus: verification.StatusPending,
		},
		{
			name:        "pending to fulfilled",
			build:       builder.NewVerificationBuilder().MustBuildDomain,
			status:      verification.StatusFulfilled,
			wantChanged: true,
			wantStatus:  verification.StatusFulfilled,
		},
		{
			name:        "pending to failed",
			build:       builder.NewVerificationBuilder().MustBuildDomain,
			status:      verification.StatusFailed,
			wantChanged: true,
			wantStatus:  verification.StatusFailed,
		},
		{
			name:       "fulfilled repeated is idempotent",
			build:      builder.NewVerificationBuilder().AsFulfilled(at).MustBuildDomain,
			status:     verification.StatusFulfilled,
			wantStatus: verification.StatusFulfilled,
		},
		{
			name:       "fulfilled to failed is rejected",
			build:      builder.NewVerificationBuilder().AsFulfilled(at).MustBuildDomain,
			status:     verification.StatusFailed,
			wantStatus: verification.StatusFulfilled,
			errIs:      verification.ErrAlreadyResolved,
		},
		{
			name:       "failed to pending is rejected",
			build:      builder.NewVerificationBuilder().AsFailed("x", at).MustBuildDomain,
			status:     verification.StatusPending,
			wantStatus: verification.StatusFailed,
			errIs:      verification.ErrAlreadyResolved,
		},
		{
			name:       "unknown status",
			build:      builder.NewVerificationBuilder().MustBuildDomain,
			status:     verification.Status("done"),
			wantStatus: verification.StatusPending,
			errIs:      verification.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.build()
			changed, err := req.Apply(tt.status, result, "Oracle network timeout", at)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, req.Status())
			assert.Equal(t, req.IsTerminal(), req.CompletedAt() != nil)
		})
	}
}

func TestRequest_AttachTransactionHash(t *testing.T) {
	req := builder.NewVerificationBuilder().WithTransactionHash(nil).MustBuildDomain()

	assert.False(t, req.AttachTransactionHash(" "))
	assert.Nil(t, req.TransactionHash())

	assert.True(t, req.AttachTransactionHash(builder.DefaultTransactionHash))
	assert.False(t, req.AttachTransactionHash("0xabc"))
	require.NotNil(t, req.TransactionHash())
	assert.Equal(t, builder.DefaultTransactionHash, *req.TransactionHash())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want verification.Status
		ok   bool
	}{
		{raw: "pending", want: verification.StatusPending, ok: true},
		{raw: "fulfilled", want: verification.StatusFulfilled, ok: true},
		{raw: "completed", want: verification.StatusFulfilled, ok: true},
		{raw: " Completed ", want: verification.StatusFulfilled, ok: true},
		{raw: "failed", want: verification.StatusFailed, ok: true},
		{raw: "error", want: verification.StatusFailed, ok: true},
		{raw: "done"},
		{raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := verification.ParseStatus(tt.raw)
			if !tt.ok {
				assert.ErrorIs(t, err, verification.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
