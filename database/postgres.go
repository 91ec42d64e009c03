package database

import (
	"context"

	"github.com/jackc/pgx/v4/log/zapadapter"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

//OpenPostgres connects a pool to the database in connstring
func OpenPostgres(ctx context.Context, connstring string) (*PostgresStore, error) {

	poolConfig, err := pgxpool.ParseConfig(connstring)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse connection string")
	}
	poolConfig.ConnConfig.Logger = zapadapter.NewLogger(zap.L())

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return &PostgresStore{db: db}, nil
}

func (ps *PostgresStore) SetupSchema(ctx context.Context) error {
	_, err := ps.db.Exec(ctx, postgresSchema)
	return errors.Wrap(err, "unable to create dataset table")
}

func (ps *PostgresStore) DeleteSchema(ctx context.Context) error {
	_, err := ps.db.Exec(ctx, dropSchema)
	return err
}

func (ps *PostgresStore) FindOrCreateDataset(ctx context.Context, name string, payload string) (*Dataset, error) {

	insert := "INSERT INTO dataset(name, payload, updated_at) VALUES($1, $2, $3) ON CONFLICT (name) DO NOTHING"
	tag, err := ps.db.Exec(ctx, insert, name, payload, now())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create dataset %s", name)
	}
	if tag.RowsAffected() > 0 {
		zap.S().Infof("created dataset %s", name)
	}

	sql := "SELECT id, name, payload, updated_at FROM dataset WHERE name = $1"
	var d Dataset
	err = ps.db.QueryRow(ctx, sql, name).Scan(&d.Id, &d.Name, &d.Payload, &d.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load dataset %s", name)
	}
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

func (ps *PostgresStore) UpdateDataset(ctx context.Context, dataset *Dataset) error {

	sql := "UPDATE dataset SET payload = $1, updated_at = $2 WHERE id = $3"
	tag, err := ps.db.Exec(ctx, sql, dataset.Payload, dataset.UpdatedAt, dataset.Id)
	if err != nil {
		return errors.Wrapf(err, "unable to update dataset %d", dataset.Id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Errorf("dataset %d does not exist", dataset.Id)
	}
	return nil
}

func (ps *PostgresStore) Ping(ctx context.Context) error {
	return ps.db.Ping(ctx)
}

func (ps *PostgresStore) Close() error {
	ps.db.Close()
	return nil
}
