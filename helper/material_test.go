package helper

import "testing"

func TestFreeLimit(t *testing.T) {
	cases := []struct {
		name      string
		spaceType string
		want      int
	}{
		{"table", "shop", 1},
		{"table", "", 1},
		{"Table", "pavilion", 2},
		{"table", "Pavilion", 2},
		{"chair", "shop", 2},
		{"CHAIR", "pavilion", 2},
		{"plywood", "pavilion", 0},
	}
	for _, tc := range cases {
		if got := FreeLimit(tc.name, tc.spaceType); got != tc.want {
			t.Fatalf("FreeLimit(%q, %q) = %d, want %d", tc.name, tc.spaceType, got, tc.want)
		}
	}
}

func TestUnitPrice(t *testing.T) {
	if got := UnitPrice("table"); got != 600 {
		t.Fatalf("table price = %v, want 600", got)
	}
	if got := UnitPrice("Chair"); got != 100 {
		t.Fatalf("chair price = %v, want 100", got)
	}
	if got := UnitPrice("plywood"); got != 0 {
		t.Fatalf("plywood price = %v, want 0", got)
	}
}

func TestIsBillableKind(t *testing.T) {
	if !IsBillableKind("Table") || !IsBillableKind("chair") {
		t.Fatal("tables and chairs must be billable")
	}
	if IsBillableKind("plywood") || IsBillableKind("rope") {
		t.Fatal("only tables and chairs are billable")
	}
}

func TestOverFreeLimit(t *testing.T) {
	if OverFreeLimit(0, 1) {
		t.Fatal("first item within a limit of 1 must be free")
	}
	if !OverFreeLimit(1, 1) {
		t.Fatal("second item past a limit of 1 must be billed")
	}
	if OverFreeLimit(1, 2) || !OverFreeLimit(2, 2) {
		t.Fatal("limit of 2 must bill from the third item")
	}
}

// Walks a scan sequence the way IssueItem prices each item: the count of
// same-kind items already out decides free vs billed.
func TestIssueBillingSequence(t *testing.T) {
	cases := []struct {
		name      string
		spaceType string
		charges   []float64
	}{
		{"table", "shop", []float64{0, 600, 600}},
		{"table", "pavilion", []float64{0, 0, 600}},
		{"chair", "shop", []float64{0, 0, 100, 100}},
	}
	for _, tc := range cases {
		limit := FreeLimit(tc.name, tc.spaceType)
		for issued, want := range tc.charges {
			var got float64
			if OverFreeLimit(issued, limit) {
				got = UnitPrice(tc.name)
			}
			if got != want {
				t.Fatalf("%s in %s: issuance %d charged %v, want %v",
					tc.name, tc.spaceType, issued+1, got, want)
			}
		}
	}
}

func TestNormalizeReturnStatus(t *testing.T) {
	cases := map[string]string{
		"DAMAGED":   "DAMAGED",
		"damaged":   "DAMAGED",
		" damaged ": "DAMAGED",
		"":          "AVAILABLE",
		"OK":        "AVAILABLE",
		"LOST":      "AVAILABLE",
	}
	for in, want := range cases {
		if got := NormalizeReturnStatus(in); got != want {
			t.Fatalf("NormalizeReturnStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeUniqueID(t *testing.T) {
	if got := MakeUniqueID("Table", "MAI", 7); got != "TMAI0007" {
		t.Fatalf("got %q, want TMAI0007", got)
	}
	if got := MakeUniqueID("chair", "mai", 123); got != "CMAI0123" {
		t.Fatalf("got %q, want CMAI0123", got)
	}
}

func TestAssetSuffix(t *testing.T) {
	cases := map[string]string{
		"TMAI0007": "0007",
		"CMAI0123": "0123",
		"TMAI":     "",
	}
	for in, want := range cases {
		if got := AssetSuffix(in); got != want {
			t.Fatalf("AssetSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNumberListOps(t *testing.T) {
	list := ""
	list = AppendNumber(list, "0007")
	list = AppendNumber(list, "0012")
	if list != "0007,0012" {
		t.Fatalf("list = %q, want 0007,0012", list)
	}

	if !ContainsNumber(list, "0007") {
		t.Fatal("expected list to contain 0007")
	}
	// 0001 is a substring of nothing here, but 001 must not match 0012.
	if ContainsNumber(list, "001") {
		t.Fatal("partial suffix must not match")
	}

	list = StripNumber(list, "0007")
	if list != "0012" {
		t.Fatalf("after strip list = %q, want 0012", list)
	}
	if got := StripNumber(list, "9999"); got != "0012" {
		t.Fatalf("stripping a missing entry changed the list: %q", got)
	}
	if got := StripNumber("", "0001"); got != "" {
		t.Fatalf("stripping from empty list gave %q", got)
	}
}

func TestStripNumberRemovesOneOccurrence(t *testing.T) {
	list := "0005,0005,0009"
	got := StripNumber(list, "0005")
	if got != "0005,0009" {
		t.Fatalf("got %q, want 0005,0009", got)
	}
}
