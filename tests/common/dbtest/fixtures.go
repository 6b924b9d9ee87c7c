//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedBatchIDs are present after every reset.
var SeedBatchIDs = []int64{7, 42}

func CreateTestBatch(t *testing.T, db DBLike, batchID int64, verified bool) {
	t.Helper()

	status := "pending"
	if verified {
		status = "verified"
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO coffee_batches (batch_id, is_verified, verification_status) VALUES ($1, $2, $3)
		ON CONFLICT (batch_id) DO UPDATE SET is_verified = EXCLUDED.is_verified, verification_status = EXCLUDED.verification_status`,
		batchID, verified, status)
	require.NoError(t, err)
}

type BatchState struct {
	IsVerified         bool
	VerificationStatus string
}

func GetBatchState(t *testing.T, db DBLike, batchID int64) BatchState {
	t.Helper()

	var st BatchState
	err := db.QueryRow(context.Background(),
		"SELECT is_verified, verification_status FROM coffee_batches WHERE batch_id = $1", batchID).
		Scan(&st.IsVerified, &st.VerificationStatus)
	require.NoError(t, err)
	return st
}

type RequestRow struct {
	Status          string
	CompletedAt     *time.Time
	Result          []byte
	Error           *string
	TransactionHash *string
}

func GetRequestRow(t *testing.T, db DBLike, requestID string) RequestRow {
	t.Helper()

	var row RequestRow
	err := db.QueryRow(context.Background(),
		"SELECT status, completed_at, result, error, transaction_hash FROM verification_requests WHERE request_id = $1", requestID).
		Scan(&row.Status, &row.CompletedAt, &row.Result, &row.Error, &row.TransactionHash)
	require.NoError(t, err)
	return row
}

func CountRequests(t *testing.T, db DBLike, batchID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM verification_requests WHERE batch_id = $1", batchID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO coffee_batches (batch_id, is_verified, verification_status) VALUES
		    (7, false, 'pending'),
		    (42, false, 'pending')
		ON CONFLICT (batch_id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
