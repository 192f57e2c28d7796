package cmd

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
	domainmocks "svcdeps.dev/pkg/svcdeps/internal/domain/mocks"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

func TestScanCmd_Defaults(t *testing.T) {
	// Arrange
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		apt, _ := args.Commands.Lookup(m.PackageManagerApt)
		script, _ := args.ControlScripts.Path(m.ManagerSysvinit, "nginx")

		return args.Blueprint == m.Path(defaultBlueprint) &&
			args.Threads == 1 &&
			args.CommandTimeout == defaultCommandTimeout &&
			!args.FailFast &&
			!args.DryRun &&
			args.Root == "" &&
			args.MetricsFile == "" &&
			assert.ObjectsAreEqual([]string{"dpkg-query", "-L"}, apt) &&
			script == m.Path("/etc/init.d/nginx")
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan")

	// Assert
	require.NoError(t, err)
}

func TestScanCmd_FlagsArePassedThrough(t *testing.T) {
	// Arrange
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Threads == 4 &&
			args.CommandTimeout == 5*time.Second &&
			args.FailFast &&
			args.DryRun &&
			args.Root == "/mnt/image" &&
			args.MetricsFile == m.Path("/tmp/svcdeps.prom")
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(),
		"scan", "-p", "4", "--timeout", "5", "--fail-fast", "--dry-run",
		"--root", "/mnt/image", "--metrics-file", "/tmp/svcdeps.prom",
	)

	// Assert
	require.NoError(t, err)
}

func TestScanCmd_PositionalBlueprintWinsOverFlag(t *testing.T) {
	// Arrange
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Blueprint == m.Path("web.yaml")
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "--blueprint", "other.json", "scan", "web.yaml")

	// Assert
	require.NoError(t, err)
}

func TestScanCmd_BlueprintFlag(t *testing.T) {
	// Arrange
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Blueprint == m.Path("other.json")
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "-b", "other.json", "scan")

	// Assert
	require.NoError(t, err)
}

func TestScanCmd_ConfiguredPackageCommand(t *testing.T) {
	// Arrange
	overrideConfig(t, packageCommandsKey, map[string]string{"pacman": `pacman -Qlq --config "/etc/pacman.conf"`})

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		pacman, ok := args.Commands.Lookup("pacman")
		_, aptKept := args.Commands.Lookup(m.PackageManagerApt)

		return ok && aptKept &&
			assert.ObjectsAreEqual([]string{"pacman", "-Qlq", "--config", "/etc/pacman.conf"}, pacman)
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan")

	// Assert
	require.NoError(t, err)
}

func TestScanCmd_InvalidPackageCommand(t *testing.T) {
	// Arrange
	overrideConfig(t, packageCommandsKey, map[string]string{"broken": `dpkg-query "-L`})

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScanCmd_WorkflowErrorIsReturned(t *testing.T) {
	// Arrange
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.Anything).Return(domain.ErrFileRead)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan")

	// Assert
	require.ErrorIs(t, err, domain.ErrFileRead)
}

func TestScanCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan", "a.json", "b.json")

	require.Error(t, err)
}

func TestNewScanCmd(t *testing.T) {
	cmd := newScanCmd()

	assert.Equal(t, "scan [blueprint]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, scanLongDescription, cmd.Long)

	for _, name := range []string{scanParallelFlag, scanTimeoutFlag, scanFailFastFlag, scanDryRunFlag, scanRootFlag, metricsFileFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestScanCmd_FlagsWinAfterConfigOverrideIsRestored(t *testing.T) {
	// Arrange
	t.Run("override", func(t *testing.T) {
		overrideConfig(t, scanCommandTimeoutKey, int64(30))
		overrideConfig(t, controlScriptsKey, map[string]string{})
	})

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Scan(mock.Anything, mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.CommandTimeout == 5*time.Second
	})).Return(nil)

	// Act
	_, err := executeWith(t, mockWorkflow, newScanCmd(), "scan", "--timeout", "5")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, viper.GetStringMapString(controlScriptsKey), m.ManagerSysvinit)
}
