package database

import (
	"context"

	"go.uber.org/zap"
)

const (
	postgresSchema = `CREATE TABLE IF NOT EXISTS dataset(
	id serial primary key,
	name varchar(64) NOT NULL UNIQUE,
	payload text NOT NULL,
	updated_at timestamptz NOT NULL)`

	sqliteSchema = `CREATE TABLE IF NOT EXISTS dataset(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(64) NOT NULL UNIQUE,
	payload TEXT NOT NULL,
	updated_at INTEGER NOT NULL)`

	dropSchema = `DROP TABLE IF EXISTS dataset`
)

//DeleteSchema cleans up the tables and data - useful for testing but not exposed to web
func DeleteSchema(ctx context.Context, db Store) error {
	return db.DeleteSchema(ctx)
}

//SetupSchema creates the required tables if they don't exist, safe to run on every start
func SetupSchema(ctx context.Context, db Store) error {

	zap.L().Info("ensuring dataset table")
	if err := db.SetupSchema(ctx); err != nil {
		return err
	}
	return nil
}
