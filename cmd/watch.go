package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [tasks...]",
		Short: "Regrade tasks whenever they change",
		Long:  watchLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			suite, err := m.ParseSuite(viper.GetString(suiteConfigKey))
			if err != nil {
				return err
			}

			reportsPath := m.Path(viper.GetString(outputFlagName))

			return workflow.Watch(context.Background(), domain.RunArgs{
				TasksRoot:  m.Path(viper.GetString(tasksFlagName)),
				HiddenRoot: m.Path(viper.GetString(hiddenFlagName)),
				Reports:    reportsPath,
				HistoryDB:  historyPath(reportsPath),
				Names:      args,
				Suite:      suite,
				Threads:    viper.GetInt(runParallelConfigKey),
				RunTimeout: viper.GetDuration(runTimeoutConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
