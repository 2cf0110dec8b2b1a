package integration_tests

import (
	"context"
	"testing"

	"github.com/vk/contractcfg/internal/app"
	"github.com/vk/contractcfg/internal/testutil"
)

// integrationResult holds the outcome of loading and validating a project.
type integrationResult struct {
	App       *app.App
	Project   *app.Project
	LoadErr   error
	Err       error
	LogOutput string
}

// runIntegrationTest writes files into a fresh project root, then loads and
// validates it the way the validate command does.
func runIntegrationTest(t *testing.T, files map[string]string) *integrationResult {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	cfg, err := app.NewConfig(app.Config{Root: root, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("invalid app config: %v", err)
	}

	logs := &testutil.SafeBuffer{}
	a := app.NewApp(logs, cfg)
	res := &integrationResult{App: a}

	ctx := context.Background()
	res.Project, res.LoadErr = a.Load(ctx)
	if res.LoadErr == nil {
		res.Err = a.Validate(ctx, res.Project)
	}
	res.LogOutput = logs.String()
	return res
}
