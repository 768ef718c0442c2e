package flags

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/filter"
)

func TestHandleSort(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddSort(cmd)

	d, err := HandleSort(cmd)
	if err != nil || d != filter.Ascending {
		t.Fatalf("expected ascending default, got %v, %v", d, err)
	}

	if err := cmd.Flags().Set("sort", "desc"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if d, _ := HandleSort(cmd); d != filter.Descending {
		t.Fatalf("expected descending, got %v", d)
	}

	if err := cmd.Flags().Set("sort", "latest"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if d, _ := HandleSort(cmd); d != filter.Latest {
		t.Fatalf("expected latest, got %v", d)
	}

	if err := cmd.Flags().Set("sort", "sideways"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if _, err := HandleSort(cmd); !errors.Is(err, filter.ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestHandleQuery(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddQuery(cmd)

	if err := cmd.Flags().Set("query", "tree"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	q, err := HandleQuery(cmd)
	if err != nil || q != "tree" {
		t.Fatalf("expected tree, got %q, %v", q, err)
	}
}
