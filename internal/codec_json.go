package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// JSONCodec stores the records as a single array of objects.
// Example:
//
//	[
//	  {"amount": 12.5, "category": "Coffee", "date": "2024-03-01"},
//	  {"amount": 40, "category": "Rent", "date": "2024-03-01"}
//	]
//
// On load, amount may also be a string ("12.50").
type JSONCodec struct{}

type jsonRecord struct {
	Amount   jsonAmount `json:"amount"`
	Category string     `json:"category"`
	Date     string     `json:"date"` // YYYY-MM-DD
}

// jsonAmount holds the raw amount text, accepting both 12.5 and "12.5".
type jsonAmount string

func (a *jsonAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return fmt.Errorf("%w: missing", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = str
	}
	*a = jsonAmount(s)
	return nil
}

func (a jsonAmount) MarshalJSON() ([]byte, error) {
	return []byte(a), nil
}

func (JSONCodec) Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedRecordError{Index: -1, Err: fmt.Errorf("parsing JSON: %w", err)}
	}

	var records []Record
	for index, item := range raw {
		rec, err := decodeJSONRecord(item)
		if err != nil {
			return nil, &MalformedRecordError{Index: index, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeJSONRecord(item json.RawMessage) (Record, error) {
	var jr jsonRecord
	if err := json.Unmarshal(item, &jr); err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("parsing JSON object: %w", err)
	}
	amount, err := ParseAmount(string(jr.Amount))
	if err != nil {
		return Record{}, err
	}
	date, err := ParseDate(jr.Date)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(amount, jr.Category, date)
}

func (JSONCodec) Encode(w io.Writer, records []Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		out = append(out, jsonRecord{
			Amount:   jsonAmount(r.Amount.String()),
			Category: r.Category,
			Date:     r.Date.Format(DateLayout),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func init() {
	RegisterCodec(FormatJSON, JSONCodec{})
}
