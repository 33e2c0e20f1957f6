package mcp

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/prompt"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Adventure command to execute, e.g. go north, pick rusty key, interact"`
	Answer  string `json:"answer,omitempty" jsonschema:"Answer used when the command raises a riddle"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a fresh adventure before executing the command"`
}

type CommandOutput struct {
	Output string                  `json:"output" jsonschema:"Raw game output"`
	State  domain.AdventureSummary `json:"state" jsonschema:"Summary of the current adventure state"`
}

// Server exposes a single shared adventure session as an MCP tool.
type Server struct {
	mu       sync.Mutex
	world    *domain.World
	sessions app.SessionRegistry
	id       string
	game     *app.AdventureSession
}

func NewServer(world *domain.World, sessions app.SessionRegistry) *Server {
	s := &Server{world: world, sessions: sessions}
	s.reset(io.Discard)
	return s
}

// reset replaces the running adventure; callers hold mu or own s exclusively.
func (s *Server) reset(out io.Writer) {
	if s.id != "" {
		s.sessions.Unregister(s.id)
	}
	s.id = uuid.NewString()
	s.sessions.Register(s.id, domain.GameAdventure)
	s.game = app.NewAdventureSession(s.world, "", prompt.NewScript(), out)
	s.game.Start()
}

func (s *Server) HandleCommand(ctx context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var intro bytes.Buffer
	if input.Reset || !s.game.Alive() {
		s.reset(&intro)
		if input.Command == "" {
			return nil, &CommandOutput{Output: intro.String(), State: s.game.Summary()}, nil
		}
	}

	var answers []string
	if input.Answer != "" {
		answers = append(answers, input.Answer)
	}
	output, summary, err := s.game.ExecuteCaptured(ctx, input.Command, answers...)
	if err != nil {
		return nil, nil, err
	}
	return nil, &CommandOutput{Output: intro.String() + output, State: summary}, nil
}

// Handler serves the MCP streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "knlang-arcade",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the KN-Lang adventure and return output plus state summary.",
	}, s.HandleCommand)

	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Logger: slog.Default(),
	})
}

// Close unregisters the hosted session.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" {
		s.sessions.Unregister(s.id)
		s.id = ""
	}
}
