package main

import (
	"os"

	"github.com/rs/zerolog/log"

	glean "github.com/gleanwork/langchain-glean"
	"github.com/gleanwork/langchain-glean/mcp"
)

func main() {
	c, err := glean.New(glean.Credentials{})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Glean client")
		os.Exit(1)
	}
	if err := mcp.ServeStdio(c); err != nil {
		log.Error().Err(err).Msg("MCP server exited with error")
		os.Exit(1)
	}
}
