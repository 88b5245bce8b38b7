package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent grading runs",
		Long:  "Show summaries of recent grading runs recorded in the history database.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.History(context.Background(), domain.HistoryArgs{
				Database: historyPath(reportsPath),
				Limit:    viper.GetInt(historyLimitKey),
			})
		},
	}

	configureHistoryFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func configureHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&historyLimitFlag, limitFlagName, "n", viper.GetInt(historyLimitKey), "maximum number of runs to show")
	bindFlagToConfig(cmd.Flags().Lookup(limitFlagName), historyLimitKey)
}
