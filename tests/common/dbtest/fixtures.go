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

// SeedLedgerEntry writes a ledger row directly, bypassing the duplicate guard.
func SeedLedgerEntry(t *testing.T, db DBLike, raffleKey, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO draw_ledger (raffle_key, status, requester) VALUES ($1, $2, 'seed') ON CONFLICT (raffle_key) DO UPDATE SET status = EXCLUDED.status",
		raffleKey, status)
	require.NoError(t, err)
}

func LedgerStatus(t *testing.T, db DBLike, raffleKey string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM draw_ledger WHERE raffle_key = $1", raffleKey).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountVerifications(t *testing.T, db DBLike, raffleKey string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM verification_records WHERE raffle_key = $1", raffleKey).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
