package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
	domainmocks "svcdeps.dev/pkg/svcdeps/internal/domain/mocks"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

func TestViewCmd_ShowsEveryServiceByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Blueprint == m.Path(defaultBlueprint) && len(args.Services) == 0
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, newViewCmd(), "view")

	require.NoError(t, err)
}

func TestViewCmd_ServiceFilterIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Blueprint == m.Path("site.json") &&
			len(args.Services) == 2 &&
			args.Services[0] == "nginx" &&
			args.Services[1] == "upstart/web"
	})).Return(nil)

	_, err := executeWith(t, mockWorkflow, newViewCmd(), "view", "site.json", "-s", "nginx", "--service", "upstart/web")

	require.NoError(t, err)
}

func TestViewCmd_RejectsExtraPositionalArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, newViewCmd(), "view", "a.json", "nginx")

	require.Error(t, err)
}
