package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

const kvTableName = "kv_entries"

// KVTable stores ledger blobs in the kv_entries table of a local SQLite file.
type KVTable struct {
	db   *sql.DB
	exec bob.DB
	now  func() time.Time
}

// OpenKVTable migrates the SQLite file at path and opens it for use.
func OpenKVTable(ctx context.Context, path string) (*KVTable, error) {
	if _, _, err := Migrate(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &KVTable{
		db:   db,
		exec: bob.NewDB(db),
		now:  time.Now,
	}, nil
}

// Get returns the value stored under key. found is false when the key was never written.
func (t *KVTable) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := sqlite.Select(
		sm.Columns("value"),
		sm.From(kvTableName),
		sm.Where(sqlite.Quote("key").EQ(sqlite.Arg(key))),
	)

	value, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// SetMany upserts every entry inside one transaction.
func (t *KVTable) SetMany(ctx context.Context, entries map[string][]byte) error {
	tx, err := t.exec.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	updatedAt := t.now().UTC().Format(time.RFC3339Nano)
	for key, value := range entries {
		query := sqlite.Insert(
			im.Into(kvTableName, "key", "value", "updated_at"),
			im.Values(sqlite.Arg(key), sqlite.Arg(string(value)), sqlite.Arg(updatedAt)),
			im.OnConflict("key").DoUpdate(
				im.SetExcluded("value", "updated_at"),
			),
		)
		if _, err := bob.Exec(ctx, tx, query); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("upsert %q: %w", key, err)
		}
	}

	return tx.Commit(ctx)
}

func (t *KVTable) Close() error {
	return t.db.Close()
}
