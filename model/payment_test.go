package model

import "testing"

func TestPaymentTotal(t *testing.T) {
	p := Payment{
		RentAmount:     500,
		ElectricAmount: 120.50,
		MaterialAmount: 600,
		ShedAmount:     0,
	}
	if got := p.Total(); got != 1220.50 {
		t.Fatalf("Total() = %v, want 1220.50", got)
	}
}

func TestSessionScopeIDs(t *testing.T) {
	active := EventSession{IsActive: true}
	active.ID = 3
	viewing := EventSession{}
	viewing.ID = 1

	scope := SessionScope{Active: &active, Viewing: &viewing}
	if scope.ActiveID() != 3 {
		t.Fatalf("ActiveID = %d, want 3", scope.ActiveID())
	}
	if scope.ViewingID() != 1 {
		t.Fatalf("ViewingID = %d, want 1", scope.ViewingID())
	}

	// Without an explicit viewing override the active session is viewed.
	scope = SessionScope{Active: &active}
	if scope.ViewingID() != 3 {
		t.Fatalf("ViewingID = %d, want active fallback 3", scope.ViewingID())
	}

	empty := SessionScope{}
	if empty.ActiveID() != 0 || empty.ViewingID() != 0 {
		t.Fatal("empty scope must resolve to zero IDs")
	}
}
