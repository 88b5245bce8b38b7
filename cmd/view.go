package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [task]",
		Short: "View the last grading report",
		Long:  "View the last saved grading report, optionally narrowed to a single task.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			task := ""
			if len(args) > 0 {
				task = args[0]
			}

			return workflow.View(context.Background(), domain.ViewArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
				Task:    task,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
