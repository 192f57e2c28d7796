package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svcdeps.dev/pkg/svcdeps/internal/domain"
)

// executeWith runs args against a fresh root command carrying sub, with
// the package-level workflow replaced by wf and logs sent to a temp file.
func executeWith(t *testing.T, wf domain.Workflow, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	if wf != nil {
		originalWorkflow := workflow
		workflow = wf
		t.Cleanup(func() { workflow = originalWorkflow })
	}

	logFile := filepath.Join(t.TempDir(), "svcdeps.log")
	cmd.SetArgs(append([]string{"--log-file", logFile}, args...))

	err := cmd.Execute()

	return out.String(), err
}

// overrideConfig pins key to value for the rest of the test, then rebuilds
// viper from its defaults so the override cannot shadow later flag bindings.
func overrideConfig(t *testing.T, key string, value any) {
	t.Helper()

	t.Cleanup(func() {
		viper.Reset()
		setConfigDefaults()
	})

	viper.Set(key, value)
}
