package history

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

var _ Recorder = (*SQLiteRecorder)(nil)

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] history recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id           TEXT PRIMARY KEY,
			completed_at INTEGER NOT NULL,
			kind         TEXT NOT NULL,
			amount       TEXT NOT NULL,
			speed        TEXT,
			fee          TEXT,
			recipient    TEXT,
			cash_before  TEXT,
			cash_after   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_ts ON transactions(completed_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Record inserts e. Amounts are stored as fixed two-place text so they
// round-trip exactly.
func (r *SQLiteRecorder) Record(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO transactions
		(id, completed_at, kind, amount, speed, fee, recipient, cash_before, cash_after)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		e.ID, e.CompletedAt.UnixNano(), e.Kind,
		e.Amount.StringFixed(2), e.Speed, e.Fee.StringFixed(2), e.Recipient,
		e.CashBefore.StringFixed(2), e.CashAfter.StringFixed(2),
	)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *SQLiteRecorder) Recent(limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(`SELECT id, completed_at, kind, amount, speed, fee, recipient, cash_before, cash_after
		FROM transactions ORDER BY completed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                          Entry
			ts                         int64
			amount, fee, before, after string
			speed, recipient           sql.NullString
		)
		if err := rows.Scan(&e.ID, &ts, &e.Kind, &amount, &speed, &fee, &recipient, &before, &after); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		e.CompletedAt = time.Unix(0, ts)
		e.Speed = speed.String
		e.Recipient = recipient.String
		for _, f := range []struct {
			dst *decimal.Decimal
			src string
		}{{&e.Amount, amount}, {&e.Fee, fee}, {&e.CashBefore, before}, {&e.CashAfter, after}} {
			if f.src == "" {
				continue
			}
			d, err := decimal.NewFromString(f.src)
			if err != nil {
				return nil, fmt.Errorf("transaction %s: bad decimal %q: %w", e.ID, f.src, err)
			}
			*f.dst = d
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
