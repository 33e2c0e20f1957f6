package cli

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/config"
	"knlang-arcade/internal/domain"
	transport "knlang-arcade/internal/transport/http"
	mcptransport "knlang-arcade/internal/transport/mcp"
)

// NewServeCmd builds the CLI subcommand that hosts both games over websockets and MCP.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Host the games over WebSocket and MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	w, err := loadWorld(cfg, "")
	if err != nil {
		return err
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	sessions := b.sessionRegistry(cfg)
	service := quizService(cfg, b.questionRepository(cfg), 0)
	wsHandler := transport.NewWSHandler(service, w, sessions)
	mcpServer := mcptransport.NewServer(w, sessions)
	defer mcpServer.Close()

	mcpPath := cfg.Server.MCPPath
	if mcpPath == "" {
		mcpPath = "/mcp"
	}

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     newMux(wsHandler, mcpServer, mcpPath, sessions),
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting arcade on :%s (mcp at %s)", finalPort, mcpPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type sessionsResponse struct {
	Active int `json:"active"`
}

func newMux(wsHandler *transport.WSHandler, mcpServer *mcptransport.Server, mcpPath string, sessions app.SessionRegistry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sessionsResponse{Active: sessions.Count()})
	})
	mux.HandleFunc("/ws/"+string(domain.GameAdventure), wsHandler.ServeAdventure)
	mux.HandleFunc("/ws/"+string(domain.GameQuiz), wsHandler.ServeQuiz)
	mux.Handle(mcpPath, mcpServer.Handler())
	return mux
}
