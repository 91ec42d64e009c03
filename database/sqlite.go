package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//SqliteStore keeps the dataset table in a local file. updated_at is stored as unix microseconds.
type SqliteStore struct {
	db *sql.DB
}

func OpenSqlite(ctx context.Context, path string) (*SqliteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	zap.S().Infof("using sqlite database %s", path)
	return &SqliteStore{db: db}, nil
}

func (ss *SqliteStore) SetupSchema(ctx context.Context) error {
	_, err := ss.db.ExecContext(ctx, sqliteSchema)
	return errors.Wrap(err, "unable to create dataset table")
}

func (ss *SqliteStore) DeleteSchema(ctx context.Context) error {
	_, err := ss.db.ExecContext(ctx, dropSchema)
	return err
}

func (ss *SqliteStore) FindOrCreateDataset(ctx context.Context, name string, payload string) (*Dataset, error) {

	insert := "INSERT INTO dataset(name, payload, updated_at) VALUES(?, ?, ?) ON CONFLICT (name) DO NOTHING"
	res, err := ss.db.ExecContext(ctx, insert, name, payload, now().UnixMicro())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create dataset %s", name)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		zap.S().Infof("created dataset %s", name)
	}

	query := "SELECT id, name, payload, updated_at FROM dataset WHERE name = ?"
	var d Dataset
	var updated int64
	err = ss.db.QueryRowContext(ctx, query, name).Scan(&d.Id, &d.Name, &d.Payload, &updated)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load dataset %s", name)
	}
	d.UpdatedAt = time.UnixMicro(updated).UTC()
	return &d, nil
}

func (ss *SqliteStore) UpdateDataset(ctx context.Context, dataset *Dataset) error {

	query := "UPDATE dataset SET payload = ?, updated_at = ? WHERE id = ?"
	res, err := ss.db.ExecContext(ctx, query, dataset.Payload, dataset.UpdatedAt.UnixMicro(), dataset.Id)
	if err != nil {
		return errors.Wrapf(err, "unable to update dataset %d", dataset.Id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Errorf("dataset %d does not exist", dataset.Id)
	}
	return nil
}

func (ss *SqliteStore) Ping(ctx context.Context) error {
	return ss.db.PingContext(ctx)
}

func (ss *SqliteStore) Close() error {
	return ss.db.Close()
}
