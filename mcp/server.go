// Package mcp exposes the Glean tools over the Model Context Protocol so
// MCP-speaking agents can call them without linking this module.
package mcp

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	glean "github.com/gleanwork/langchain-glean"
)

// config holds the MCP server settings, all environment-driven.
type config struct {
	ServerName    string
	ServerVersion string
	LogLevel      zerolog.Level
}

func loadConfig() *config {
	return &config{
		ServerName:    getEnvOrDefault("MCP_SERVER_NAME", "glean-mcp-server"),
		ServerVersion: getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		LogLevel:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with the Glean search, people-directory
// and chat tools registered against the given client.
func NewServer(c *glean.Client) (*server.MCPServer, error) {
	cfg := loadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	s := server.NewMCPServer(cfg.ServerName, cfg.ServerVersion, server.WithToolCapabilities(true))

	handlers := map[string]toolRegisterer{
		"search": NewSearchHandler(c),
		"people": NewPeopleHandler(c),
		"chat":   NewChatHandler(c),
	}
	for name, h := range handlers {
		if err := h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("registering %s tools: %w", name, err)
		}
	}
	return s, nil
}

// ServeStdio runs the MCP server on stdin/stdout until the stream closes.
func ServeStdio(c *glean.Client) error {
	s, err := NewServer(c)
	if err != nil {
		return err
	}
	return server.ServeStdio(s)
}
