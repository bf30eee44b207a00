package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CSVColumn pairs a header with the extractor that produces its cell.
type CSVColumn[T any] struct {
	Header string
	Value  func(row T) string
}

// WriteCSV serializes rows against an explicit column list.
func WriteCSV[T any](rows []T, columns []CSVColumn[T]) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = col.Value(row)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendCSV streams a CSV attachment.
func SendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Money formats an amount for CSV cells.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", Round2(v))
}
