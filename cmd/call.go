package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// CallCmd invokes a registered tool from the CLI and prints the result
// envelope. Arguments can be supplied inline via -i/--input or loaded from a
// JSON file via --file.
type CallCmd struct {
	Name   string `short:"n" long:"name" description:"Tool name" required:"yes"`
	Inline string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File   string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
}

func (c *CallCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	args, err := c.arguments()
	if err != nil {
		return err
	}

	entry, err := svc.LookupTool(c.Name)
	if err != nil {
		return err
	}

	request := &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name:      c.Name,
			Arguments: mcpschema.CallToolRequestParamsArguments(args),
		},
	}
	result, jsonrpcErr := entry.Handler(context.Background(), request)
	if jsonrpcErr != nil {
		return fmt.Errorf("call %s: %v", c.Name, jsonrpcErr)
	}
	for _, content := range result.Content {
		fmt.Println(content.Text)
	}
	return nil
}

func (c *CallCmd) arguments() (map[string]interface{}, error) {
	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}
