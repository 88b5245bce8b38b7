package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

var runParallelFlag int
var runShardFlag string
var runSuiteFlag string
var runTimeoutFlag time.Duration

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Grade task solutions",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(runShardFlag)
			suite, err := m.ParseSuite(viper.GetString(suiteConfigKey))
			if err != nil {
				return err
			}

			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.Run(context.Background(), domain.RunArgs{
				TasksRoot:       m.Path(viper.GetString(tasksFlagName)),
				HiddenRoot:      m.Path(viper.GetString(hiddenFlagName)),
				Reports:         reportsPath,
				HistoryDB:       historyPath(reportsPath),
				Names:           args,
				Suite:           suite,
				Threads:         viper.GetInt(runParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				RunTimeout:      viper.GetDuration(runTimeoutConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runSuiteFlag, suiteFlagName, viper.GetString(suiteConfigKey), "vector suite to grade: public, hidden or all")
	bindFlagToConfig(cmd.Flags().Lookup(suiteFlagName), suiteConfigKey)
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for grading")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().DurationVar(&runTimeoutFlag, timeoutFlagName, viper.GetDuration(runTimeoutConfigKey), "per-vector run timeout for graded solutions")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), runTimeoutConfigKey)
	cmd.Flags().StringVarP(&runShardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
