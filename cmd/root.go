// Package cmd provides the root command and CLI setup for drill.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"drill.dev/pkg/drill/internal/adapter"
	"drill.dev/pkg/drill/internal/controller"
	"drill.dev/pkg/drill/internal/domain"
	m "drill.dev/pkg/drill/internal/model"
)

var fsAdapter adapter.TaskFSAdapter
var buildAdapter adapter.BuildAdapter
var runAdapter adapter.RunAdapter
var reportStore adapter.ReportStore
var watchAdapter adapter.WatchAdapter
var streamer domain.TaskStreamer
var grader domain.Grader
var workflow domain.Workflow
var ui controller.UI

// tasksRootFlag is a root-level flag pointing at the directory of tasks.
var tasksRootFlag string

// hiddenRootFlag points at the instructor-only vector tree; empty disables it.
var hiddenRootFlag string

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalTaskFSAdapter()
	buildAdapter = adapter.NewLocalBuildAdapter()
	runAdapter = adapter.NewLocalRunAdapter()
	reportStore = adapter.NewLocalReportStore()
	watchAdapter = adapter.NewFSWatchAdapter()
	streamer = domain.NewTaskStreamer(fsAdapter)
	grader = domain.NewGrader(fsAdapter, buildAdapter, runAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		watchAdapter,
		ui,
		streamer,
		grader,
		openHistoryStore,
	)
}

// openHistoryStore adapts the sqlite constructor to the workflow's opener.
func openHistoryStore(path m.Path) (adapter.HistoryStore, error) {
	return adapter.NewSQLiteHistoryStore(path)
}

const suiteHelp = `Vector suites:
  - public    vectors shipped inside each task directory
  - hidden    instructor vectors from the --hidden root
  - all       both suites (default)`

const rootLongDescription = `Drill grades practice-task solutions. Each task directory holds a small
program and a set of input/output vectors; drill builds every solution,
feeds it the vector inputs and compares the normalized output against
the golden files.

` + suiteHelp

const runLongDescription = `Grade the named tasks (default: every task under the tasks root).

` + suiteHelp

const listLongDescription = `List tasks under the tasks root and the number of vectors each one has.

` + suiteHelp

const watchLongDescription = `Grade once, then regrade automatically whenever a task changes on disk.

` + suiteHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Practice task grader",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(
			&tasksRootFlag, tasksFlagName,
			viper.GetString(tasksFlagName),
			"directory containing the task directories",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(tasksFlagName), tasksFlagName)

	cmd.PersistentFlags().
		StringVar(
			&hiddenRootFlag, hiddenFlagName,
			viper.GetString(hiddenFlagName),
			"directory containing hidden vectors (mirrors the tasks layout)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(hiddenFlagName), hiddenFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for grading reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log debug details to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// historyPath returns the history database location inside the reports dir.
func historyPath(reports m.Path) m.Path {
	return m.Path(filepath.Join(string(reports), historyDBName))
}
