package cmd

import (
	"context"
	"sync"

	"github.com/urltools/yourls-mcp/mcp"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		svcInst, svcErr = mcp.New(context.Background(), mcp.WithConfigPath(cfgPath))
	})
	return svcInst, svcErr
}
