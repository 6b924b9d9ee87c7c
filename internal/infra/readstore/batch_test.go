//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/readstore"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/tests/common/builder"
	readstoremock "coffee-verifier/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBatchReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.CoffeeBatches
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: verified batch", row: builder.NewBatchBuilder().AsVerified().BuildInfra()},
		{name: "error: batch not found", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", dbErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBatchReadQueries(ctrl)
			store := readstore.NewBatchReadStore(mockQueries, nil)

			mockQueries.EXPECT().GetCoffeeBatch(ctx, gomock.Any(), builder.DefaultBatchID).Return(tc.row, tc.dbErr)

			view, err := store.FindByID(ctx, builder.DefaultBatchID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(builder.NewBatchBuilder().AsVerified().BuildView(), view); diff != "" {
				t.Errorf("batch view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
