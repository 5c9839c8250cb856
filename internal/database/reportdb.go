package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gramlens/gramlens/internal/model"
)

// ReportDB provides SQLite-based storage for sanitized report history.
// It manages connection pooling and provides methods for CRUD operations.
//
// Design decision: We store the full normalized payload as a JSON document
// plus a few scalar columns for listing and comparison queries. The payload
// is immutable once sanitized, so there is nothing to normalize into
// relational form; the scalar columns exist only to avoid decoding every
// row when rendering history.
type ReportDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ReportDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ReportDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ReportDB, error) {
	dbPath := filepath.Join(dbDir, "gramlens.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids lock
	// contention entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ReportDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ReportDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ReportDB) createTables() error {
	schema := `
	-- Sanitized reports store complete normalized payloads as JSON
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report_id TEXT,
		username TEXT NOT NULL,
		overall_score REAL,
		grade TEXT,
		tier TEXT,
		findings INTEGER DEFAULT 0,
		recommendations INTEGER DEFAULT 0,
		sanitized_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		payload_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_username ON reports(username);
	CREATE INDEX IF NOT EXISTS idx_reports_report_id ON reports(report_id);
	CREATE INDEX IF NOT EXISTS idx_reports_sanitized_at ON reports(sanitized_at);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport saves a normalized payload to the history.
// The account username comes from the payload; payloads without an account
// section are stored under an empty username and only retrievable by ID.
func (rdb *ReportDB) SaveReport(ctx context.Context, payload *model.NormalizedPayload) (int64, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize payload: %w", err)
	}

	username := ""
	if payload.Account != nil {
		username = payload.Account.Username
	}

	query := `
	INSERT INTO reports (report_id, username, overall_score, grade, tier, findings, recommendations, payload_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := rdb.db.ExecContext(ctx, query,
		payload.Meta.ReportID,
		username,
		payload.OverallScore.Value,
		payload.Grade,
		payload.Meta.Tier,
		payload.TotalFindings(),
		payload.TotalRecommendations(),
		string(payloadJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save report: %w", err)
	}

	return result.LastInsertId()
}

// GetLatestReport retrieves the most recent report for an account.
// Returns nil without error when no report exists.
func (rdb *ReportDB) GetLatestReport(ctx context.Context, username string) (*model.NormalizedPayload, error) {
	query := `
	SELECT payload_json FROM reports
	WHERE username = ?
	ORDER BY sanitized_at DESC, id DESC
	LIMIT 1
	`

	var payloadJSON string
	err := rdb.db.QueryRowContext(ctx, query, username).Scan(&payloadJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return decodePayload(payloadJSON)
}

// GetReportByID retrieves a report by its database ID.
// Returns nil without error when no report exists.
func (rdb *ReportDB) GetReportByID(ctx context.Context, id int64) (*model.NormalizedPayload, error) {
	query := `
	SELECT payload_json FROM reports
	WHERE id = ?
	`

	var payloadJSON string
	err := rdb.db.QueryRowContext(ctx, query, id).Scan(&payloadJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return decodePayload(payloadJSON)
}

// ListAccounts returns all account usernames with at least one stored report.
func (rdb *ReportDB) ListAccounts(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT username FROM reports
	WHERE username != ''
	ORDER BY username
	`

	rows, err := rdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, username)
	}

	return accounts, rows.Err()
}

// ReportMetadata contains summary information about a stored report.
// This is used for displaying history without loading full payloads.
type ReportMetadata struct {
	// ID is the unique identifier of the report in the database.
	ID int64

	// ReportID is the upstream report identifier.
	ReportID string

	// Username is the analyzed account handle.
	Username string

	// OverallScore is the stored composite score.
	OverallScore float64

	// Grade is the stored letter grade.
	Grade string

	// Findings and Recommendations are the stored totals.
	Findings        int
	Recommendations int

	// SanitizedAt is when the report was stored.
	SanitizedAt time.Time
}

// GetHistory retrieves report metadata for an account, newest first.
// This is more efficient than loading full payloads when only metadata is
// needed.
func (rdb *ReportDB) GetHistory(ctx context.Context, username string) ([]ReportMetadata, error) {
	query := `
	SELECT id, report_id, username, overall_score, grade, findings, recommendations, sanitized_at
	FROM reports
	WHERE username = ?
	ORDER BY sanitized_at DESC, id DESC
	`

	rows, err := rdb.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var results []ReportMetadata
	for rows.Next() {
		var meta ReportMetadata
		var reportID sql.NullString
		var grade sql.NullString
		var score sql.NullFloat64
		var timestamp string

		if err := rows.Scan(&meta.ID, &reportID, &meta.Username, &score, &grade,
			&meta.Findings, &meta.Recommendations, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.ReportID = reportID.String
		meta.Grade = grade.String
		meta.OverallScore = score.Float64
		meta.SanitizedAt = parseTimestamp(timestamp)

		results = append(results, meta)
	}

	return results, rows.Err()
}

// decodePayload restores a stored payload from its JSON document.
func decodePayload(payloadJSON string) (*model.NormalizedPayload, error) {
	var payload model.NormalizedPayload
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}
	return &payload, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
