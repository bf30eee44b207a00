package utils

import (
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	type row struct {
		Name   string
		Amount float64
	}
	rows := []row{
		{"Anita Traders", 600},
		{"Verma & Sons, Pvt", 1200.5},
	}
	columns := []CSVColumn[row]{
		{Header: "Client", Value: func(r row) string { return r.Name }},
		{Header: "Amount", Value: func(r row) string { return Money(r.Amount) }},
	}

	data, err := WriteCSV(rows, columns)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Client,Amount" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "Anita Traders,600.00" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	// Commas in cells must be quoted.
	if lines[2] != `"Verma & Sons, Pvt",1200.50` {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	type row struct{ Name string }
	data, err := WriteCSV(nil, []CSVColumn[row]{
		{Header: "Name", Value: func(r row) string { return r.Name }},
	})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if strings.TrimSpace(string(data)) != "Name" {
		t.Fatalf("empty export = %q, want header only", string(data))
	}
}

func TestMoney(t *testing.T) {
	if got := Money(600); got != "600.00" {
		t.Fatalf("Money(600) = %q", got)
	}
	if got := Money(99.999); got != "100.00" {
		t.Fatalf("Money(99.999) = %q", got)
	}
}

func TestQRFileName(t *testing.T) {
	if got := QRFileName("TMAI0007"); got != "tmai0007.png" {
		t.Fatalf("QRFileName = %q, want tmai0007.png", got)
	}
}
