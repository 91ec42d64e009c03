package database

import (
	"time"
)

type Dataset struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	Payload   string    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}
