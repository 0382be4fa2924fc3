package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Timestamps are stored as UTC milliseconds so rows scan cleanly across
// driver versions.

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id  INTEGER PRIMARY KEY,
	username TEXT NOT NULL DEFAULT '',
	role     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS clients (
	user_id     INTEGER PRIMARY KEY,
	username    TEXT NOT NULL DEFAULT '',
	likes_count INTEGER NOT NULL DEFAULT 5,
	FOREIGN KEY (user_id) REFERENCES users (user_id)
);

CREATE TABLE IF NOT EXISTS trainers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER NOT NULL UNIQUE,
	username   TEXT NOT NULL DEFAULT '',
	direction  TEXT NOT NULL,
	name       TEXT NOT NULL,
	age        INTEGER NOT NULL,
	experience TEXT NOT NULL,
	about      TEXT NOT NULL,
	photo_id   TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'pending',
	created_at INTEGER NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users (user_id)
);

CREATE TABLE IF NOT EXISTS likes (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id       INTEGER NOT NULL,
	client_username TEXT NOT NULL DEFAULT '',
	trainer_id      INTEGER NOT NULL,
	created_at      INTEGER NOT NULL,
	UNIQUE (client_id, trainer_id),
	FOREIGN KEY (client_id) REFERENCES users (user_id),
	FOREIGN KEY (trainer_id) REFERENCES trainers (id)
);
`

// InitSchema creates the four tables if they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
