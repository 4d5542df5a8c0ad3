package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CSVCodec stores one record per row: amount,category,date. There is no header row.
type CSVCodec struct{}

func (CSVCodec) Decode(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // checked per row so the error carries the record index

	var records []Record
	for index := 0; ; index++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedRecordError{Index: index, Err: err}
			}
			return nil, err
		}
		rec, err := decodeCSVRow(row)
		if err != nil {
			return nil, &MalformedRecordError{Index: index, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeCSVRow(row []string) (Record, error) {
	if len(row) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields (amount,category,date), got %d", len(row))
	}
	amount, err := ParseAmount(row[0])
	if err != nil {
		return Record{}, err
	}
	date, err := ParseDate(row[2])
	if err != nil {
		return Record{}, err
	}
	return NewRecord(amount, row[1], date)
}

// Encode fails with ErrUnencodable for a category holding a carriage return,
// since csv readers turn a quoted "\r\n" into "\n".
func (CSVCodec) Encode(w io.Writer, records []Record) error {
	for i, r := range records {
		if strings.ContainsRune(r.Category, '\r') {
			return fmt.Errorf("%w: record %d: category %q contains a carriage return", ErrUnencodable, i, r.Category)
		}
	}

	writer := csv.NewWriter(w)
	for _, r := range records {
		row := []string{
			r.Amount.String(),
			r.Category,
			r.Date.Format(DateLayout),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func init() {
	RegisterCodec(FormatCSV, CSVCodec{})
}
