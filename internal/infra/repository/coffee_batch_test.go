//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffee-verifier/internal/domain/batch"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/repository"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/tests/common/builder"
	repositorymock "coffee-verifier/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgTextOf(s string) pgtype.Text {
	return pgconv.StringToPgtype(s)
}

func TestCoffeeBatchRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.CoffeeBatches
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: pending batch", row: builder.NewBatchBuilder().BuildInfra()},
		{name: "success: verified batch", row: builder.NewBatchBuilder().AsVerified().BuildInfra()},
		{name: "error: batch not found", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("connection refused"), expectKind: infra.KindDBFailure},
		{
			name: "error: inconsistent row",
			row: func() sqlc.CoffeeBatches {
				r := builder.NewBatchBuilder().BuildInfra()
				r.IsVerified = true
				return r
			}(),
			expectKind: infra.KindCorruptedRow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCoffeeBatchWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCoffeeBatchRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetCoffeeBatchForUpdate(ctx, mockDB, builder.DefaultBatchID).Return(tc.row, tc.dbErr)

			b, err := repo.FindByIDForUpdate(ctx, mockDB, builder.DefaultBatchID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, b)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.row.IsVerified, b.IsVerified())
			assert.Equal(t, batch.VerificationStatus(tc.row.VerificationStatus), b.VerificationStatus())
		})
	}
}

func TestCoffeeBatchRepository_MarkVerified(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 9, 1, 35, 0, time.UTC)

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: batch marked verified", affected: 1},
		{name: "error: batch vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("deadlock"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCoffeeBatchWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCoffeeBatchRepository(mockQueries, mockDB)

			b := builder.NewBatchBuilder().MustBuildDomain()
			require.True(t, b.MarkVerified(now))

			mockQueries.EXPECT().MarkCoffeeBatchVerified(ctx, mockDB, sqlc.MarkCoffeeBatchVerifiedParams{
				BatchID:   b.ID(),
				UpdatedAt: pgconv.TimeToPgtype(now),
			}).Return(tc.affected, tc.dbErr)

			err := repo.MarkVerified(ctx, mockDB, b)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
