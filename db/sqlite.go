package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/f8wq/TFL-Manager/model"
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
	// The database lives in memory only: pending submissions never outlive the process.
	dbSource = ":memory:"
)

// SQLiteStore is a Store backed by an in-memory SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens a private in-memory database and creates its schema.
func OpenSQLite() (*SQLiteStore, error) {
	conn, err := sql.Open(dbDriver, dbSource)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Every new connection to :memory: would see an empty database.
	conn.SetMaxOpenConns(1)

	store, err := NewSQLiteStore(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	log.Println("In-memory submission database initialized.")
	return store, nil
}

// NewSQLiteStore wraps an already opened connection and migrates it.
func NewSQLiteStore(conn *sql.DB) (*SQLiteStore, error) {
	if err := createTables(conn); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: conn}, nil
}

// Put inserts sub, replacing any row with the same message id.
func (s *SQLiteStore) Put(sub *model.Submission) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO pending_submissions(
		message_id, submitter_id, guild_id, level, completion, framerate, username, tracking_id, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.MessageID, sub.SubmitterID, sub.GuildID, sub.Level, sub.Completion,
		sub.Framerate, sub.Username, sub.TrackingID, sub.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("put submission %s: %w", sub.MessageID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(messageID string) (*model.Submission, error) {
	row := s.db.QueryRow(`SELECT
		message_id, submitter_id, guild_id, level, completion, framerate, username, tracking_id, created_at
	FROM pending_submissions WHERE message_id = ?`, messageID)

	var (
		sub       model.Submission
		createdAt int64
	)
	err := row.Scan(
		&sub.MessageID, &sub.SubmitterID, &sub.GuildID, &sub.Level, &sub.Completion,
		&sub.Framerate, &sub.Username, &sub.TrackingID, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission %s: %w", messageID, err)
	}
	sub.CreatedAt = time.Unix(createdAt, 0)
	return &sub, nil
}

func (s *SQLiteStore) Remove(messageID string) error {
	if _, err := s.db.Exec("DELETE FROM pending_submissions WHERE message_id = ?", messageID); err != nil {
		return fmt.Errorf("remove submission %s: %w", messageID, err)
	}
	return nil
}

// Close releases the database; its contents are lost.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
