package flags

import "github.com/spf13/cobra"

func AddQuery(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Only include problems whose name contains this text.")
}

func HandleQuery(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("query")
}
