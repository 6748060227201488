package gateway

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"fincheck/internal/domain"
)

// MySQLFeatureStore implements the FeatureStore interface on top of the
// statement_features table.
type MySQLFeatureStore struct {
	db *sqlx.DB
}

// NewMySQLFeatureStore connects to MySQL, bootstraps the schema if needed,
// and returns the store.
func NewMySQLFeatureStore(dsn string) (*MySQLFeatureStore, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not connect to feature store: %w", err)
	}
	store := &MySQLFeatureStore{db: db}
	if err := store.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying connection pool.
func (s *MySQLFeatureStore) Close() error {
	return s.db.Close()
}

func (s *MySQLFeatureStore) ensureSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS statement_features (
		id                      VARCHAR(36) PRIMARY KEY,
		pdf_page_count          INT,
		pdf_title               TEXT,
		pdf_author              TEXT,
		pdf_creator             TEXT,
		pdf_producer            TEXT,
		pdf_creation_date       VARCHAR(64),
		pdf_mod_date            VARCHAR(64),
		extracted_text_chars    INT,
		ai_word_similarity      DOUBLE,
		ai_numeric_match_ratio  DOUBLE,
		ai_numeric_count_diff   INT,
		opening_balance         DOUBLE NULL,
		closing_balance         DOUBLE NULL,
		transaction_count       INT,
		computed_vs_stated_diff DOUBLE,
		balance_mismatch        BOOLEAN,
		label                   INT NULL,
		scanned_at              TIMESTAMP
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("could not ensure statement_features schema: %w", err)
	}
	return nil
}

// SaveFeatures inserts one feature row.
func (s *MySQLFeatureStore) SaveFeatures(ctx context.Context, row *domain.FeatureRow) error {
	const query = `INSERT INTO statement_features (
		id, pdf_page_count, pdf_title, pdf_author, pdf_creator, pdf_producer,
		pdf_creation_date, pdf_mod_date, extracted_text_chars,
		ai_word_similarity, ai_numeric_match_ratio, ai_numeric_count_diff,
		opening_balance, closing_balance, transaction_count,
		computed_vs_stated_diff, balance_mismatch, label, scanned_at
	) VALUES (
		:id, :pdf_page_count, :pdf_title, :pdf_author, :pdf_creator, :pdf_producer,
		:pdf_creation_date, :pdf_mod_date, :extracted_text_chars,
		:ai_word_similarity, :ai_numeric_match_ratio, :ai_numeric_count_diff,
		:opening_balance, :closing_balance, :transaction_count,
		:computed_vs_stated_diff, :balance_mismatch, :label, :scanned_at
	)`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("could not insert feature row %s: %w", row.ID, err)
	}
	return nil
}

// ListFeatures returns every stored feature row, oldest first.
func (s *MySQLFeatureStore) ListFeatures(ctx context.Context) ([]domain.FeatureRow, error) {
	var rows []domain.FeatureRow
	const query = `SELECT * FROM statement_features ORDER BY scanned_at ASC`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("could not list feature rows: %w", err)
	}
	return rows, nil
}
