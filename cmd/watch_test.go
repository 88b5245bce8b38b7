package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"drill.dev/pkg/drill/internal/domain"
	domainmocks "drill.dev/pkg/drill/internal/domain/mocks"
	m "drill.dev/pkg/drill/internal/model"
)

func TestWatchCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.TasksRoot == m.Path("tasks") &&
			args.Reports == m.Path(".drill-reports") &&
			args.Suite == m.SuiteAll &&
			args.Threads == 1 &&
			args.RunTimeout == 10*time.Second &&
			args.TotalShardCount == 0
	})).Return(nil)

	cmd.SetArgs([]string{"watch"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestWatchCmd_NamedTasks(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newWatchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Names) == 1 && args.Names[0] == "leap-year"
	})).Return(nil)

	cmd.SetArgs([]string{"watch", "leap-year"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestNewWatchCmd(t *testing.T) {
	cmd := newWatchCmd()

	assert.Equal(t, "watch [tasks...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, watchLongDescription, cmd.Long)
}
