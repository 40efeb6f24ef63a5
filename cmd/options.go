package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"yourls-mcp configuration YAML path"`

	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the YOURLS tools"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Call      *CallCmd      `command:"call"       description:"Invoke one tool and print its result envelope"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "call":
		o.Call = &CallCmd{}
	}
}
