package run

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ImportResult reports how a CSV import went. Lines that fail validation
// are skipped and reported; good lines before and after them still land.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportCSV bulk-loads runs for one track from "date,seconds[,note]" rows.
// A leading header row is recognized and skipped. Line numbers in error
// messages are 1-based and count the header.
func (s *Service) ImportCSV(ctx context.Context, trackID, createdBy string, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for i, row := range rows {
		line := i + 1
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: expected date,seconds[,note]", line))
			continue
		}

		seconds, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: seconds not a number", line))
			continue
		}

		rec := Run{
			TrackID:   trackID,
			Date:      strings.TrimSpace(row[0]),
			Seconds:   seconds,
			CreatedBy: createdBy,
		}
		if len(row) > 2 {
			rec.Note = strings.TrimSpace(row[2])
		}

		if err := Validate(rec); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if _, err := s.insert(ctx, rec); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date")
}
