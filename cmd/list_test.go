package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
	domainmocks "svcdeps.dev/pkg/svcdeps/internal/domain/mocks"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

func TestListCmd_UsesConfiguredBlueprint(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		script, ok := args.ControlScripts.Path(m.ManagerUpstart, "web")
		return args.Blueprint == m.Path(defaultBlueprint) && ok && script == m.Path("/etc/init/web.conf")
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, newListCmd(), "list")

	require.NoError(t, err)
}

func TestListCmd_PositionalBlueprint(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Blueprint == m.Path("./site.yaml")
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, newListCmd(), "list", "./site.yaml")

	require.NoError(t, err)
}

func TestListCmd_Error(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(errors.New("load blueprint: missing"))

	_, err := executeWith(t, mockWorkflow, newListCmd(), "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
