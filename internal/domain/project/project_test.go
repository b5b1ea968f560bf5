package project_test

import (
	"testing"

	"github.com/clockhouse/timesheet/internal/domain/project"
)

func TestCatalog(t *testing.T) {
	got := project.Catalog()

	if len(got) != 3 {
		t.Fatalf("got %d projects, want 3", len(got))
	}

	// mutating the returned slice must not touch the catalog
	got[0].Name = "mutated"

	if project.NameByID(got[0].ID) == "mutated" {
		t.Fatal("catalog is not isolated from callers")
	}
}

func TestNameByID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "proj-1", want: "Project Alpha"},
		{id: "proj-2", want: "Project Beta"},
		{id: "proj-3", want: "Project Gamma"},
		{id: "proj-999", want: project.UnknownName},
		{id: "", want: project.UnknownName},
	}

	for _, tt := range tests {
		if got := project.NameByID(tt.id); got != tt.want {
			t.Fatalf("NameByID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
