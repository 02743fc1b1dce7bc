package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/courseforge/internal/lesson"
	"github.com/abhisek/courseforge/internal/server"
	"github.com/abhisek/courseforge/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lesson generation web API",
	Long: `Start an HTTP server exposing lesson generation as background
tasks: POST /api/lessons starts one, GET /api/lessons/:id polls it, and
/ws/lessons/:id streams progress over a websocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().Int("port", 8000, "Port to bind to")
	serveCmd.Flags().StringP("output", "o", "output", "Directory to write lessons into")
	serveCmd.Flags().Bool("no-ai", false, "Skip the LLM and generate template content only")
	serveCmd.Flags().Bool("cost-efficient", false, "Route most content to the provider's cheap-tier model")
}

func runServe(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()

	// Provider credentials are resolved up front so a misconfigured
	// server fails at startup, not on the first request.
	if _, _, err := buildGenerator(ctx, cmd, s); err != nil {
		return err
	}

	// Each task gets its own generator so cache and stats are per-run.
	factory := func(onProgress lesson.Progress) (*lesson.Runner, error) {
		gen, _, err := buildGenerator(ctx, cmd, s)
		if err != nil {
			return nil, err
		}
		return lesson.NewRunner(gen, lesson.Options{
			Events:     s.EventRepo(),
			OnProgress: onProgress,
		}), nil
	}

	output, _ := cmd.Flags().GetString("output")
	handler := server.NewLessonHandler(server.NewTaskManager(), factory, output)
	router := server.NewRouter(handler)

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := fmt.Sprintf("%s:%d", host, port)

	fmt.Printf("Serving lesson API on http://%s\n", addr)
	return router.Run(addr)
}
