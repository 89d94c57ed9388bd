package models

import "testing"

func TestDeriveItemStatus(t *testing.T) {
	cases := []struct {
		progress int
		want     ItemStatus
	}{
		{0, ItemNotStarted},
		{5, ItemInProgress},
		{50, ItemInProgress},
		{99, ItemInProgress},
		{100, ItemDone},
	}

	for _, c := range cases {
		if got := DeriveItemStatus(c.progress); got != c.want {
			t.Errorf("DeriveItemStatus(%d) = %q, want %q", c.progress, got, c.want)
		}
	}
}

func TestSnapProgress(t *testing.T) {
	if got := SnapProgress(ItemDone, 40); got != 100 {
		t.Errorf("Done should snap progress to 100, got %d", got)
	}
	if got := SnapProgress(ItemNotStarted, 40); got != 0 {
		t.Errorf("Not Started should snap progress to 0, got %d", got)
	}
	if got := SnapProgress(ItemBlocked, 40); got != 40 {
		t.Errorf("Blocked should keep current progress, got %d", got)
	}
	if got := SnapProgress(ItemInProgress, 40); got != 40 {
		t.Errorf("In Progress should keep current progress, got %d", got)
	}
}

func TestEmployeeFirstName(t *testing.T) {
	e := Employee{Name: "Riya Soni"}
	if got := e.FirstName(); got != "Riya" {
		t.Errorf("FirstName() = %q, want %q", got, "Riya")
	}

	single := Employee{Name: "RK"}
	if got := single.FirstName(); got != "RK" {
		t.Errorf("FirstName() = %q, want %q", got, "RK")
	}
}
