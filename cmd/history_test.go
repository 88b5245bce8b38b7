package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"drill.dev/pkg/drill/internal/domain"
	domainmocks "drill.dev/pkg/drill/internal/domain/mocks"
	m "drill.dev/pkg/drill/internal/model"
)

func TestHistoryCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newHistoryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("History", mock.Anything, mock.MatchedBy(func(args domain.HistoryArgs) bool {
		return args.Database == historyPath(m.Path(".drill-reports")) && args.Limit == 10
	})).Return(nil)

	cmd.SetArgs([]string{"history"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newHistoryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("History", mock.Anything, mock.MatchedBy(func(args domain.HistoryArgs) bool {
		return args.Limit == 3
	})).Return(nil)

	cmd.SetArgs([]string{"history", "-n", "3"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestNewHistoryCmd(t *testing.T) {
	cmd := newHistoryCmd()

	assert.Equal(t, "history", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("limit"))
}
