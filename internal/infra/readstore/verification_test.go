//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/readstore"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/tests/common/builder"
	readstoremock "coffee-verifier/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestVerificationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	completed := time.Date(2025, 3, 14, 9, 1, 35, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockVerificationReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: request found",
			setupMock: func(mock *readstoremock.MockVerificationReadQueries) {
				row := builder.NewVerificationBuilder().AsFulfilled(completed).BuildInfra()
				mock.EXPECT().GetVerificationRequestByID(ctx, gomock.Any(), builder.DefaultRequestID).Return(row, nil)
			},
		},
		{
			name: "error: request not found",
			setupMock: func(mock *readstoremock.MockVerificationReadQueries) {
				mock.EXPECT().GetVerificationRequestByID(ctx, gomock.Any(), builder.DefaultRequestID).
					Return(sqlc.VerificationRequests{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockVerificationReadQueries) {
				mock.EXPECT().GetVerificationRequestByID(ctx, gomock.Any(), builder.DefaultRequestID).
					Return(sqlc.VerificationRequests{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: corrupted row",
			setupMock: func(mock *readstoremock.MockVerificationReadQueries) {
				row := builder.NewVerificationBuilder().BuildInfra()
				row.Result = []byte(`{"verifiedQuantity":"many"}`)
				mock.EXPECT().GetVerificationRequestByID(ctx, gomock.Any(), builder.DefaultRequestID).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindCorruptedRow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewVerificationReadStore(mockQueries, nil)

			req, err := store.FindByID(ctx, builder.DefaultRequestID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, req)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, builder.DefaultRequestID, req.ID())
			assert.True(t, req.IsTerminal())
		})
	}
}

// =============================================================================
// FindStalePending Tests
// =============================================================================

func TestVerificationReadStore_FindStalePending(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("success: passes cutoff and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
		store := readstore.NewVerificationReadStore(mockQueries, nil)

		rows := []sqlc.VerificationRequests{
			builder.NewVerificationBuilder().WithRequestID("req_1").BuildInfra(),
			builder.NewVerificationBuilder().WithRequestID("req_2").BuildInfra(),
		}
		mockQueries.EXPECT().ListStalePendingVerificationRequests(ctx, gomock.Any(), sqlc.ListStalePendingVerificationRequestsParams{
			SubmittedAt: pgconv.TimeToPgtype(cutoff),
			Limit:       50,
		}).Return(rows, nil)

		reqs, err := store.FindStalePending(ctx, cutoff, 50)
		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.Equal(t, "req_1", reqs[0].ID())
		assert.Equal(t, "req_2", reqs[1].ID())
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
		store := readstore.NewVerificationReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListStalePendingVerificationRequests(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindStalePending(ctx, cutoff, 50)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Batch Listing Tests
// =============================================================================

func TestVerificationReadStore_FindByBatch(t *testing.T) {
	ctx := context.Background()
	last := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("first page maps rows to views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
		store := readstore.NewVerificationReadStore(mockQueries, nil)

		failedAt := last.Add(time.Minute)
		rows := []sqlc.VerificationRequests{
			builder.NewVerificationBuilder().AsFailed("Data source unavailable", failedAt).BuildInfra(),
		}
		mockQueries.EXPECT().ListVerificationRequestsByBatchFirstPage(ctx, gomock.Any(), sqlc.ListVerificationRequestsByBatchFirstPageParams{
			BatchID: builder.DefaultBatchID,
			Limit:   21,
		}).Return(rows, nil)

		views, err := store.FindByBatchFirstPage(ctx, builder.DefaultBatchID, 21)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "failed", views[0].Status)
		assert.Nil(t, views[0].Result)
		require.NotNil(t, views[0].Error)
		assert.Equal(t, "Data source unavailable", *views[0].Error)
	})

	t.Run("keyset page passes the cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
		store := readstore.NewVerificationReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListVerificationRequestsByBatchKeyset(ctx, gomock.Any(), sqlc.ListVerificationRequestsByBatchKeysetParams{
			BatchID:     builder.DefaultBatchID,
			SubmittedAt: pgconv.TimeToPgtype(last),
			RequestID:   "req_9",
			Limit:       11,
		}).Return([]sqlc.VerificationRequests{}, nil)

		views, err := store.FindByBatchKeyset(ctx, builder.DefaultBatchID, last, "req_9", 11)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("error: corrupted row in page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVerificationReadQueries(ctrl)
		store := readstore.NewVerificationReadStore(mockQueries, nil)

		bad := builder.NewVerificationBuilder().BuildInfra()
		bad.VerificationType = "audit"
		mockQueries.EXPECT().ListVerificationRequestsByBatchFirstPage(ctx, gomock.Any(), gomock.Any()).
			Return([]sqlc.VerificationRequests{bad}, nil)

		_, err := store.FindByBatchFirstPage(ctx, builder.DefaultBatchID, 21)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCorruptedRow))
	})
}
