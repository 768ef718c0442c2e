package flags

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/lcv/internal/filter"
)

func AddSort(cmd *cobra.Command) {
	cmd.Flags().String("sort", "asc", "Sort order: asc or desc by problem number, or latest for fetch order.")
}

func HandleSort(cmd *cobra.Command) (filter.Direction, error) {
	v, err := cmd.Flags().GetString("sort")
	if err != nil {
		return filter.Ascending, err
	}
	return filter.ParseDirection(v)
}
