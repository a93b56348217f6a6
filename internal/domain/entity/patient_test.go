package entity

import "testing"

func TestPatientMergeKeepsIdentity(t *testing.T) {
	p := Patient{ID: "pac_1", Name: "Joana", CPF: "11122233344", Email: "joana@example.com"}

	p.Merge(Patient{Name: "Joana S.", Phone: "11 99999-0000"})

	if p.ID != "pac_1" || p.CPF != "11122233344" {
		t.Fatalf("identity changed: %+v", p)
	}
	if p.Name != "Joana S." {
		t.Errorf("Name = %s, want Joana S.", p.Name)
	}
	if p.Email != "joana@example.com" {
		t.Errorf("empty email overwrote the stored one: %q", p.Email)
	}
	if p.Phone != "11 99999-0000" {
		t.Errorf("Phone = %s", p.Phone)
	}
}
