// Package store persists lexan analysis runs in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mgomes/lexan/lexan"
	_ "modernc.org/sqlite"
)

// Run kinds.
const (
	KindTokens  = "tokens"
	KindSymbols = "symbols"
)

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// Run describes one persisted analysis.
type Run struct {
	ID        string
	Kind      string
	Source    string
	CreatedAt time.Time
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	s := &Store{conn: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tokens (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			lexeme TEXT NOT NULL,
			category TEXT NOT NULL,
			operator_name TEXT NOT NULL DEFAULT '',
			line INTEGER NOT NULL,
			col INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS symbols (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			symbol TEXT NOT NULL,
			address INTEGER NOT NULL,
			kind TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
	}
	for _, query := range queries {
		if _, err := s.conn.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// SaveTokens records a token listing and returns the new run id.
func (s *Store) SaveTokens(ctx context.Context, source string, tokens []lexan.Token) (string, error) {
	return s.saveRun(ctx, KindTokens, source, func(tx *sql.Tx, id string) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO tokens (run_id, seq, lexeme, category, operator_name, line, col) VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, tok := range tokens {
			if _, err := stmt.ExecContext(ctx, id, i, tok.Lexeme, string(tok.Category), tok.Operator, tok.Pos.Line, tok.Pos.Column); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveSymbols records a symbol table and returns the new run id.
func (s *Store) SaveSymbols(ctx context.Context, source string, table *lexan.SymbolTable) (string, error) {
	return s.saveRun(ctx, KindSymbols, source, func(tx *sql.Tx, id string) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO symbols (run_id, seq, symbol, address, kind) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, sym := range table.Symbols() {
			if _, err := stmt.ExecContext(ctx, id, i, string(sym.Char), int64(sym.Addr), string(sym.Kind)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) saveRun(ctx context.Context, kind, source string, fill func(*sql.Tx, string) error) (string, error) {
	id := uuid.New().String()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, kind, source, created_at) VALUES (?, ?, ?, ?)`,
		id, kind, source, time.Now().UnixNano()); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	if err := fill(tx, id); err != nil {
		return "", fmt.Errorf("failed to insert %s: %w", kind, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Runs lists every run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id, kind, source, created_at FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			created int64
		)
		if err := rows.Scan(&run.ID, &run.Kind, &run.Source, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt = time.Unix(0, created)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Tokens returns the tokens recorded for a run in their original order.
func (s *Store) Tokens(ctx context.Context, runID string) ([]lexan.Token, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT lexeme, category, operator_name, line, col FROM tokens WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	var tokens []lexan.Token
	for rows.Next() {
		var (
			tok      lexan.Token
			category string
		)
		if err := rows.Scan(&tok.Lexeme, &category, &tok.Operator, &tok.Pos.Line, &tok.Pos.Column); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tok.Category = lexan.Category(category)
		tokens = append(tokens, tok)
	}
	return tokens, rows.Err()
}

// Symbols rebuilds the symbol table recorded for a run.
func (s *Store) Symbols(ctx context.Context, runID string) (*lexan.SymbolTable, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT symbol FROM symbols WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	table := lexan.NewSymbolTable()
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		for _, ch := range symbol {
			table.Insert(ch)
		}
	}
	return table, rows.Err()
}
