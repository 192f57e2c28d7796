package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "svcdeps version")
	assert.Contains(t, output, "go version")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestVersionLines(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want []string
	}{
		{"no build info", nil, []string{"version: unknown"}},
		{"unversioned", &debug.BuildInfo{}, []string{"version: unknown"}},
		{
			"release",
			&debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Path: "svcdeps.dev/pkg/svcdeps", Version: "v1.2.0"}},
			[]string{"svcdeps version\t v1.2.0", "module\t\t svcdeps.dev/pkg/svcdeps", "go version\t go1.25.1"},
		},
		{
			"dirty checkout",
			&debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Path: "svcdeps.dev/pkg/svcdeps", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			[]string{
				"svcdeps version\t (devel)",
				"module\t\t svcdeps.dev/pkg/svcdeps",
				"go version\t go1.25.1",
				"commit\t\t abc123+dirty (2026-01-02T03:04:05Z)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLines(tt.info))
		})
	}
}
