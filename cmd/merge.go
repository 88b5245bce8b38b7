package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge shard reports into a single report",
		Long:  "Merge shard_*.yaml reports from a sharded run into a single grading report.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.Merge(context.Background(), domain.MergeArgs{
				Reports:   reportsPath,
				HistoryDB: historyPath(reportsPath),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
