package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fxledger/internal/model"
)

// recordTimeLayout is the wire and storage format for record timestamps.
const recordTimeLayout = "2006-01-02 15:04:05"

type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

func scanRecord(scanner interface{ Scan(...any) error }) (*model.ConversionRecord, error) {
	var rec model.ConversionRecord
	err := scanner.Scan(&rec.ID, &rec.UserID, &rec.BaseCurrency, &rec.TargetCurrency,
		&rec.Amount, &rec.Rate, &rec.ConvertedAmount, &rec.Date)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

const recordCols = `id, user_id, base_currency, target_currency, amount, rate, converted_amount, created_at`

// Create appends a conversion record owned by the given user, stamped with
// the current UTC time.
func (s *RecordStore) Create(userID, base, target string, amount, rate, converted float64) (*model.ConversionRecord, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(recordTimeLayout)

	_, err := s.db.Exec(
		`INSERT INTO records (id, user_id, base_currency, target_currency, amount, rate, converted_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, base, target, amount, rate, converted, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	row := s.db.QueryRow(`SELECT `+recordCols+` FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

// ListByUser returns the user's records ordered by creation time ascending
// (insertion order), with an empty slice when there are none.
func (s *RecordStore) ListByUser(userID string) ([]model.ConversionRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+recordCols+` FROM records WHERE user_id = ? ORDER BY created_at, rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []model.ConversionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Delete removes one record if it belongs to the given user. Returns false
// when the record does not exist or is owned by someone else.
func (s *RecordStore) Delete(recordID, userID string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM records WHERE id = ? AND user_id = ?`, recordID, userID)
	if err != nil {
		return false, fmt.Errorf("delete record: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return count > 0, nil
}
