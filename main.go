package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/urltools/yourls-mcp/cmd"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	cmd.Run(os.Args[1:])
}
