package centrality_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpar/builder"
	"github.com/katalvlaran/lvpar/centrality"
	"github.com/katalvlaran/lvpar/parallel"
)

// TestConfigLogger: every debug line of a call goes to the configured
// logger, none to the context logger.
func TestConfigLogger(t *testing.T) {
	cfgLogger, cfgHook := test.NewNullLogger()
	cfgLogger.SetLevel(logrus.DebugLevel)
	ctxLogger, ctxHook := test.NewNullLogger()
	ctxLogger.SetLevel(logrus.DebugLevel)
	ctx := parallel.WithLogger(context.Background(), ctxLogger)

	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	_, err = centrality.Betweenness(ctx, g, centrality.WithConfig(parallel.Config{Workers: 2, Logger: cfgLogger}))
	require.NoError(t, err)

	assert.Empty(t, ctxHook.AllEntries())
	var messages []string
	for _, e := range cfgHook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "centrality: betweenness")
	assert.Contains(t, messages, "parallel: batch done")
}
