// Package ingest parses uploaded transaction files into model batches.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

// Required CSV columns, matched case-insensitively
const (
	columnDate        = "date"
	columnDescription = "description"
	columnAmount      = "amount"
	columnCategory    = "category"
	columnAccount     = "account"
)

var (
	ErrEmptyFile      = errors.New("csv file is empty")
	ErrMissingColumns = errors.New("csv is missing required columns (date, description, amount)")
)

// Accepted date layouts, tried in order
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Result is a parsed CSV batch. Rows that could not be parsed are counted
// rather than failing the whole file.
type Result struct {
	Transactions []models.Transaction
	SkippedRows  int
}

// ParseCSV reads a transaction CSV. The header row is required and must
// contain date, description and amount columns in any order; category and
// account are optional. Unparseable rows are skipped.
func ParseCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{columnDate, columnDescription, columnAmount} {
		if _, ok := columns[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	result := &Result{Transactions: []models.Transaction{}}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping malformed csv row")
			result.SkippedRows++
			continue
		}

		txn, err := parseRow(record, columns)
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping invalid csv row")
			result.SkippedRows++
			continue
		}

		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func parseRow(record []string, columns map[string]int) (models.Transaction, error) {
	date, err := parseDate(field(record, columns, columnDate))
	if err != nil {
		return models.Transaction{}, err
	}

	description := strings.TrimSpace(field(record, columns, columnDescription))
	if description == "" {
		return models.Transaction{}, fmt.Errorf("description is empty")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(field(record, columns, columnAmount)))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	txn := models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}

	if category := strings.TrimSpace(field(record, columns, columnCategory)); category != "" {
		if !models.IsValidCategory(category) {
			return models.Transaction{}, fmt.Errorf("unknown category %q", category)
		}
		txn.Category = category
	}
	txn.Account = strings.TrimSpace(field(record, columns, columnAccount))

	return txn, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", value)
}
