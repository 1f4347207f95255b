// Package exchange reads and writes the alert exchange file, the JSON
// handoff between the standalone scraper run and the serving layer.
//
// The file holds an ordered array of flat records. Missing coordinates are
// encoded as null for both lat and lng; the two are never present one
// without the other. Reads are tolerant about lat/lng typing because the
// file is externally supplied: numbers and numeric strings both coerce.
package exchange

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

// Record is one alert in the exchange file.
type Record struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Source   string `json:"source"`
	Lat      any    `json:"lat"`
	Lng      any    `json:"lng"`
	Time     string `json:"time"`
}

// FromAlert converts a domain alert to its wire record.
func FromAlert(a domain.Alert) Record {
	rec := Record{
		Title:    a.Title,
		Message:  a.Message,
		Severity: string(a.Severity),
		Source:   a.Source,
		Time:     a.Time.UTC().Format(time.RFC3339),
	}
	if a.Coordinate != nil {
		rec.Lat = a.Coordinate.Lat
		rec.Lng = a.Coordinate.Lng
	}
	return rec
}

// Read loads the exchange file as an ordered record list. A file whose top
// level is not a JSON array is an error.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exchange file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("exchange file must be a JSON array of alert objects: %w", err)
	}
	return records, nil
}

// Write serializes alerts to the exchange file, replacing any previous
// content.
func Write(path string, alerts []domain.Alert) error {
	records := make([]Record, 0, len(alerts))
	for _, a := range alerts {
		records = append(records, FromAlert(a))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode exchange records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write exchange file: %w", err)
	}
	return nil
}

// CoerceFloat converts an exchange field to float64. JSON numbers arrive as
// float64; numeric strings are parsed. Anything else fails.
func CoerceFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("not a numeric value: %q", val)
		}
		return f, nil
	case json.Number:
		return val.Float64()
	default:
		return 0, fmt.Errorf("not a numeric value: %v", v)
	}
}
