package cmd

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/lesson"
	"github.com/abhisek/courseforge/internal/llm"
	"github.com/abhisek/courseforge/internal/store"
	"github.com/abhisek/courseforge/internal/topic"
)

var createCmd = &cobra.Command{
	Use:   "create [topic]",
	Short: "Generate a complete lesson for a topic",
	Long: `Generate a complete programming lesson: per-module starter examples,
assignments, tests, and lesson-level scaffolding (README, Makefile,
pytest config). Content comes from the configured LLM provider; with
--no-ai, or when no provider is reachable, deterministic templates
are used instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().String("config", "", "Path to a topic JSON config file")
	createCmd.Flags().String("difficulty", "beginner", "Target difficulty: beginner, intermediate, advanced")
	createCmd.Flags().Float64("hours", 4, "Estimated hours to complete the lesson")
	createCmd.Flags().Int("modules", 3, "Number of modules to generate (1-10)")
	createCmd.Flags().StringP("output", "o", "output", "Directory to write the lesson into")
	createCmd.Flags().Bool("no-ai", false, "Skip the LLM and generate template content only")
	createCmd.Flags().Bool("cost-efficient", false, "Route most content to the provider's cheap-tier model")
	createCmd.Flags().Bool("plan", false, "Ask the LLM to plan the module breakdown (ignored with --no-ai)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" && len(args) == 0 {
		return fmt.Errorf("a topic name or --config file is required")
	}

	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	spec, err := buildSpec(cmd, args)
	if err != nil {
		return err
	}

	gen, provider, err := buildGenerator(ctx, cmd, s)
	if err != nil {
		return err
	}

	if planned, _ := cmd.Flags().GetBool("plan"); planned && provider != nil {
		count, _ := cmd.Flags().GetInt("modules")
		spec.Modules = content.PlanModules(ctx, provider, &spec, count)
	}

	runner := lesson.NewRunner(gen, lesson.Options{
		Events: s.EventRepo(),
		OnProgress: func(stage string, completed, total int) {
			fmt.Printf("  [%d/%d] %s\n", completed, total, stage)
		},
	})

	output, _ := cmd.Flags().GetString("output")
	fmt.Printf("Generating lesson %q in %s\n", spec.Name, output)

	result, err := runner.Generate(ctx, &spec, output)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(result))
	if !result.Success {
		return fmt.Errorf("lesson generation failed: %s", result.Error)
	}
	return nil
}

// buildSpec assembles the topic spec from --config or the CLI flags.
func buildSpec(cmd *cobra.Command, args []string) (topic.Spec, error) {
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		return topic.Load(configPath)
	}

	difficulty, _ := cmd.Flags().GetString("difficulty")
	hours, _ := cmd.Flags().GetFloat64("hours")
	count, _ := cmd.Flags().GetInt("modules")
	return topic.NewSpec(args[0], topic.Difficulty(difficulty), hours, count)
}

// buildGenerator wires the content generator to the configured provider,
// or to no provider at all with --no-ai. The full-tier provider is also
// returned for module planning.
func buildGenerator(ctx context.Context, cmd *cobra.Command, s *store.Store) (*content.Generator, llm.Provider, error) {
	noAI, _ := cmd.Flags().GetBool("no-ai")
	costEfficient, _ := cmd.Flags().GetBool("cost-efficient")

	if noAI {
		gen, err := content.NewGenerator(nil, nil, content.Options{})
		return gen, nil, err
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, nil, fmt.Errorf("%w\n\nSet an API key or pass --no-ai for template-only generation", err)
		}
		cfg = discovered
	}

	full, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return nil, nil, err
	}

	var economy llm.Provider
	if costEfficient {
		economy, err = llm.NewEconomyProvider(ctx, cfg, s.EventRepo())
		if err != nil {
			return nil, nil, err
		}
	}

	gen, err := content.NewGenerator(full, economy, content.Options{
		CostEfficient: costEfficient,
	})
	return gen, full, err
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	summaryOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	summaryBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	summaryDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	summaryBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5CF6")).
			Padding(0, 2)
)

func renderSummary(result lesson.Result) string {
	var b strings.Builder

	b.WriteString(summaryTitle.Render(result.TopicName) + "\n\n")

	status := summaryOK.Render("✓ passed")
	if !result.Success {
		status = summaryBad.Render("✗ failed: " + result.Error)
	}
	fmt.Fprintf(&b, "Status:   %s\n", status)
	fmt.Fprintf(&b, "Output:   %s\n", result.LessonDir)
	fmt.Fprintf(&b, "Modules:  %d/%d succeeded\n", result.ModulesSucceeded(), len(result.Modules))
	fmt.Fprintf(&b, "Quality:  %.2f (syntax %v, tests %v)\n",
		result.Quality.Score, result.Quality.PythonValid, result.Quality.TestsExecutable)
	if n := len(result.Quality.Lint.Warnings); n > 0 {
		fmt.Fprintf(&b, "Lint:     %s\n", summaryDim.Render(fmt.Sprintf("%d style warning(s)", n)))
	}
	fmt.Fprintf(&b, "Content:  %d AI, %d cached, %d fallback\n",
		result.Stats.AICalls, result.Stats.CacheHits, result.Stats.FallbackCalls)
	b.WriteString(summaryDim.Render(fmt.Sprintf("Took %.1fs", result.Duration.Seconds())))

	return summaryBox.Render(b.String())
}
