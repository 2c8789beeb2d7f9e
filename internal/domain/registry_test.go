package domain

import (
	"errors"
	"testing"
)

func TestRegistry_LookupIgnoresCase(t *testing.T) {
	r := NewRegistry(Builtin()...)

	d, err := r.Lookup("Temperature")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if d.ID != TemperatureID {
		t.Errorf("got %q, want %q", d.ID, TemperatureID)
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry(Builtin()...)

	_, err := r.Lookup("salinity")
	if !errors.Is(err, ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
}

func TestRegistry_MergeReplacesInPlace(t *testing.T) {
	r := NewRegistry(Builtin()...)

	custom := Cleanliness()
	custom.Title = "Custom cleanliness"
	extra := Temperature()
	extra.ID = "salinity"

	r.Merge(custom, extra)

	ids := r.IDs()
	want := []string{CleanlinessID, TemperatureID, "salinity"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	d, _ := r.Lookup(CleanlinessID)
	if d.Title != "Custom cleanliness" {
		t.Errorf("expected replaced title, got %q", d.Title)
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
}

func TestRegistry_AllIsCopy(t *testing.T) {
	r := NewRegistry(Builtin()...)
	all := r.All()
	all[0].ID = "mutated"
	if r.IDs()[0] != CleanlinessID {
		t.Error("All() should return a copy")
	}
}
