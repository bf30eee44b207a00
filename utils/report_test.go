package utils

import (
	"testing"
	"time"

	"github.com/achalesh/exhibition-manager-sub001/model"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		600.005:  600.01,
		599.994:  599.99,
		0:        0,
		-100.005: -100.01,
		100.1:    100.1,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestIsDue(t *testing.T) {
	if IsDue(0.01) {
		t.Fatal("0.01 sits on the threshold and is not due")
	}
	if IsDue(0) || IsDue(-50) {
		t.Fatal("zero and negative balances are not due")
	}
	if !IsDue(0.02) {
		t.Fatal("0.02 is past the threshold")
	}
	if !IsDue(600) {
		t.Fatal("600 is due")
	}
}

func TestComputeDuesSettledBooking(t *testing.T) {
	// Rent 1000 with 100 discount, fully paid: nothing due anywhere.
	r := model.DueRow{
		RentCharge: 900,
		RentPaid:   900,
	}
	ComputeDues(&r)
	if r.RentDue != 0 || r.TotalDue != 0 {
		t.Fatalf("settled booking shows due: rent=%v total=%v", r.RentDue, r.TotalDue)
	}
}

func TestComputeDues(t *testing.T) {
	r := model.DueRow{
		RentCharge:     900,
		ElectricCharge: 250.50,
		MaterialCharge: 600,
		ShedCharge:     1200,
		RentPaid:       500,
		ElectricPaid:   250.50,
		MaterialPaid:   100,
		ShedPaid:       0,
	}
	ComputeDues(&r)
	if r.RentDue != 400 {
		t.Fatalf("rent due = %v, want 400", r.RentDue)
	}
	if r.ElectricDue != 0 {
		t.Fatalf("electric due = %v, want 0", r.ElectricDue)
	}
	if r.MaterialDue != 500 {
		t.Fatalf("material due = %v, want 500", r.MaterialDue)
	}
	if r.ShedDue != 1200 {
		t.Fatalf("shed due = %v, want 1200", r.ShedDue)
	}
	if r.TotalDue != 2100 {
		t.Fatalf("total due = %v, want 2100", r.TotalDue)
	}
}

func TestFilterDueCategory(t *testing.T) {
	settled := model.DueRow{RentCharge: 900, RentPaid: 900}
	ComputeDues(&settled)
	rentOnly := model.DueRow{RentCharge: 1000, RentPaid: 400}
	ComputeDues(&rentOnly)
	materialOnly := model.DueRow{MaterialCharge: 600}
	ComputeDues(&materialOnly)
	overpaidRent := model.DueRow{RentCharge: 500, RentPaid: 600, ShedCharge: 300}
	ComputeDues(&overpaidRent)

	rows := []model.DueRow{settled, rentOnly, materialOnly, overpaidRent}

	if got := FilterDueCategory(rows, model.DueRent); len(got) != 1 || got[0].RentDue != 600 {
		t.Fatalf("rent view = %+v, want the single 600 row", got)
	}
	if got := FilterDueCategory(rows, model.DueMaterial); len(got) != 1 || got[0].MaterialDue != 600 {
		t.Fatalf("material view = %+v, want the single 600 row", got)
	}
	if got := FilterDueCategory(rows, model.DueShed); len(got) != 1 {
		t.Fatalf("shed view has %d rows, want 1", len(got))
	}
	// The overpaid rent offsets the shed charge to 200 total, still due.
	if got := FilterDueCategory(rows, model.DueAll); len(got) != 3 {
		t.Fatalf("all view has %d rows, want 3", len(got))
	}
	if got := FilterDueCategory(rows, model.DueElectric); len(got) != 0 {
		t.Fatalf("electric view has %d rows, want 0", len(got))
	}
}

func TestSummarizeTransactions(t *testing.T) {
	now := time.Now()
	rows := []model.AccountingTransaction{
		{Date: now, Type: model.TxIncome, Amount: 1500},
		{Date: now, Type: model.TxIncome, Amount: 600.25},
		{Date: now, Type: model.TxExpenditure, Amount: 300.10},
	}
	s := SummarizeTransactions(rows)
	if s.TotalIncome != 2100.25 {
		t.Fatalf("income = %v, want 2100.25", s.TotalIncome)
	}
	if s.TotalExpenditure != 300.10 {
		t.Fatalf("expenditure = %v, want 300.10", s.TotalExpenditure)
	}
	if s.Net != 1800.15 {
		t.Fatalf("net = %v, want 1800.15", s.Net)
	}
}

func TestSummarizeTransactionsEmpty(t *testing.T) {
	s := SummarizeTransactions(nil)
	if s.TotalIncome != 0 || s.TotalExpenditure != 0 || s.Net != 0 {
		t.Fatalf("empty ledger summary = %+v, want zeros", s)
	}
}
