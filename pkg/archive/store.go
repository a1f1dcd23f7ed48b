package archive

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// SetupSchema initializes the tables used by the archive. It is idempotent
// and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {

	const (
		schemaBatches = `
CREATE TABLE IF NOT EXISTS tweet_batches (
    batch_id INTEGER PRIMARY KEY,
    source TEXT NOT NULL,
    max_chars INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);
`
		schemaTweets = `
CREATE TABLE IF NOT EXISTS tweets (
    tweet_id INTEGER PRIMARY KEY,
    batch_id INTEGER NOT NULL REFERENCES tweet_batches(batch_id),
    position INTEGER NOT NULL,
    body TEXT NOT NULL,
    length INTEGER NOT NULL
);
`
		indexTweets = `CREATE INDEX IF NOT EXISTS tweets_batch_idx ON tweets (batch_id, position);`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// If the transaction succeeds, tx.Commit() will be called first, and the rollback will do nothing.
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	for _, stmt := range []string{schemaBatches, schemaTweets, indexTweets} {
		if _, err = tx.Exec(stmt); err != nil {
			return fmt.Errorf("could not create schema: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Batch is one generation run.
type Batch struct {
	Source    string // The corpus the tweets were generated from.
	MaxChars  int
	CreatedAt time.Time
	Tweets    []string
}

// Tweet is a single archived tweet.
type Tweet struct {
	Id        int64
	BatchId   int64
	Position  int
	Body      string
	Source    string
	CreatedAt time.Time
}

// Stats holds aggregated statistics for the archive.
type Stats struct {
	Batches     int
	Tweets      int
	TotalLength int
}

// AverageLength returns the mean tweet length, or 0 for an empty archive.
func (s Stats) AverageLength() float64 {
	if s.Tweets == 0 {
		return 0
	}
	return float64(s.TotalLength) / float64(s.Tweets)
}

// Store reads and writes the archive using prepared statements.
type Store struct {
	db              *sql.DB
	stmtInsertBatch *sql.Stmt
	stmtInsertTweet *sql.Stmt
	stmtRecent      *sql.Stmt
	stmtStats       *sql.Stmt
	logger          *slog.Logger
}

// NewStore pre-compiles the archive's statements against db, returning an
// error if any preparation fails. SetupSchema must have been called.
func NewStore(db *sql.DB) (*Store, error) {
	stmtInsertBatch, err := db.Prepare(`INSERT INTO tweet_batches (source, max_chars, created_at) VALUES (?, ?, ?);`)
	if err != nil {
		return nil, err
	}

	stmtInsertTweet, err := db.Prepare(`INSERT INTO tweets (batch_id, position, body, length) VALUES (?, ?, ?, ?);`)
	if err != nil {
		return nil, err
	}

	stmtRecent, err := db.Prepare(`
SELECT t.tweet_id, t.batch_id, t.position, t.body, b.source, b.created_at
FROM tweets t JOIN tweet_batches b ON b.batch_id = t.batch_id
ORDER BY t.tweet_id DESC LIMIT ?;`)
	if err != nil {
		return nil, err
	}

	stmtStats, err := db.Prepare(`SELECT (SELECT COUNT(*) FROM tweet_batches), COUNT(*), coalesce(SUM(length), 0) FROM tweets;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:              db,
		stmtInsertBatch: stmtInsertBatch,
		stmtInsertTweet: stmtInsertTweet,
		stmtRecent:      stmtRecent,
		stmtStats:       stmtStats,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtInsertBatch.Close()
	_ = s.stmtInsertTweet.Close()
	_ = s.stmtRecent.Close()
	_ = s.stmtStats.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SaveBatch records a batch and its tweets in a single transaction and returns
// the new batch id. A zero CreatedAt is replaced by the current time.
func (s *Store) SaveBatch(ctx context.Context, batch Batch) (int64, error) {
	if batch.CreatedAt.IsZero() {
		batch.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	res, err := tx.StmtContext(ctx, s.stmtInsertBatch).ExecContext(ctx, batch.Source, batch.MaxChars, batch.CreatedAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to insert batch: %w", err)
	}
	batchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read batch id: %w", err)
	}

	stmtInsertTweet := tx.StmtContext(ctx, s.stmtInsertTweet)
	for i, body := range batch.Tweets {
		if _, err = stmtInsertTweet.ExecContext(ctx, batchID, i, body, len(body)); err != nil {
			return 0, fmt.Errorf("failed to insert tweet %d of batch %d: %w", i, batchID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "Tweet batch archived",
		slog.Int64("batch_id", batchID),
		slog.String("source", batch.Source),
		slog.Int("tweets", len(batch.Tweets)),
	)
	return batchID, nil
}

// Recent returns up to limit tweets, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Tweet, error) {
	rows, err := s.stmtRecent.QueryContext(ctx, limit)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var tweets []Tweet
	for rows.Next() {
		var t Tweet
		var created int64
		if err = rows.Scan(&t.Id, &t.BatchId, &t.Position, &t.Body, &t.Source, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = time.Unix(created, 0)
		tweets = append(tweets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tweets, nil
}

// Stats returns a snapshot of the archive's statistics.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.stmtStats.QueryRowContext(ctx).Scan(&st.Batches, &st.Tweets, &st.TotalLength); err != nil {
		return Stats{}, err
	}
	return st, nil
}
