package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [tasks...]",
		Short: "List tasks and vector counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{
				TasksRoot:  m.Path(viper.GetString(tasksFlagName)),
				HiddenRoot: m.Path(viper.GetString(hiddenFlagName)),
				Names:      args,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
