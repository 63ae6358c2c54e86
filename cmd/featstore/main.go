package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ai-ml-platform/featstore/internal/definitions"
	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/internal/infrastructure/config"
	"github.com/ai-ml-platform/featstore/internal/infrastructure/database"
	"github.com/ai-ml-platform/featstore/internal/repositories"
	"github.com/ai-ml-platform/featstore/internal/repositories/badgerdb"
	"github.com/ai-ml-platform/featstore/internal/repositories/postgres"
	"github.com/ai-ml-platform/featstore/internal/services"
	"github.com/ai-ml-platform/featstore/internal/services/validator"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var repoFlag string

var rootCmd = &cobra.Command{
	Use:   "featstore",
	Short: "Feature registry tool for the AI/ML platform",
	Long: `Feature registry tool for the AI/ML platform.
Registers the declared entities, feature views, and feature services
against the configured registry. Without a subcommand it runs apply.`,
	Run: runApply,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Register all declared feature definitions",
	Long:  `Register all declared feature definitions against the registry and print a summary.`,
	Run:   runApply,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what apply would change",
	Long:  `Show what apply would change without writing to the registry.`,
	Run:   runPlan,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the declared feature definitions",
	Long:  `Validate the declared feature definitions without touching any registry.`,
	Run:   runValidate,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the registered state as YAML",
	Long:  `Print every registered object for the configured project as YAML.`,
	Run:   runDump,
}

var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Delete every registered object for the project",
	Long:  `Delete every registered object for the configured project. Tearing down an empty registry is a no-op.`,
	Run:   runTeardown,
}

func init() {
	// Global --chdir flag: where feature_store.yaml and the local registry live
	rootCmd.PersistentFlags().StringVarP(&repoFlag, "chdir", "C", ".", "Feature store repo directory")

	// Add subcommands
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(teardownCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

// setupService loads the store configuration and opens the registry
// backend it selects. The returned closer releases the backend.
func setupService() (*services.RegistryService, func()) {
	if err := config.InitConfig(repoFlag); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, closer, err := newRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to open registry: %v", err)
	}

	return services.NewRegistryService(repo, cfg.Project), closer
}

// newRepository opens the registry backend named by the configuration.
func newRepository(cfg *config.Config) (repositories.RegistryRepository, func(), error) {
	switch cfg.Registry.Type {
	case config.RegistryTypeLocal:
		path := cfg.Registry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(repoFlag, path)
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create registry directory: %w", err)
		}
		repo, err := badgerdb.NewBadgerRegistryRepository(badgerdb.StoreOptions{Path: path})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil

	case config.RegistryTypePostgres:
		pg, err := database.NewPostgres(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		// Keep the schema current so apply works against a fresh database
		if err := pg.RunMigrations(); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return postgres.NewPostgresRegistryRepository(pg.DB), func() { pg.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown registry type: %s", cfg.Registry.Type)
	}
}

// applyRecorder adapts the registry service to the definitions.Store
// contract and collects the changes from each batch.
type applyRecorder struct {
	svc     *services.RegistryService
	changes []services.Change
}

func (a *applyRecorder) Apply(ctx context.Context, objs []entities.Object) error {
	result, err := a.svc.Apply(ctx, objs)
	if err != nil {
		return err
	}
	a.changes = append(a.changes, result.Changes...)
	return nil
}

func runApply(cmd *cobra.Command, args []string) {
	svc, closer := setupService()
	defer closer()

	recorder := &applyRecorder{svc: svc}
	if err := definitions.Apply(context.Background(), recorder); err != nil {
		log.Fatalf("Failed to apply feature definitions: %v", err)
	}

	printChanges(recorder.changes)
	printSummary()
}

func runPlan(cmd *cobra.Command, args []string) {
	svc, closer := setupService()
	defer closer()

	result, err := svc.Plan(context.Background(), definitions.Snapshot().Objects())
	if err != nil {
		log.Fatalf("Failed to plan feature definitions: %v", err)
	}

	for _, c := range result.Changes {
		switch c.Action {
		case services.ActionCreate:
			fmt.Printf("Would create %s %s\n", kindLabel(c.Kind), c.Name)
		case services.ActionUpdate:
			fmt.Printf("Would update %s %s\n", kindLabel(c.Kind), c.Name)
		}
	}

	created, updated, unchanged := result.Counts()
	fmt.Printf("Plan: %d to create, %d to update, %d unchanged\n", created, updated, unchanged)
}

func runValidate(cmd *cobra.Command, args []string) {
	if err := validator.New(definitions.Snapshot()).Validate(); err != nil {
		log.Fatalf("Feature definitions are invalid: %v", err)
	}

	summary := definitions.Summarize()
	fmt.Printf("Validated %d entities, %d feature views, %d feature services, %d data sources\n",
		summary.Entities, summary.FeatureViews, summary.FeatureServices, summary.DataSources)
}

func runDump(cmd *cobra.Command, args []string) {
	svc, closer := setupService()
	defer closer()

	registry, err := svc.Registry(context.Background())
	if err != nil {
		log.Fatalf("Failed to load registry: %v", err)
	}

	if registry.IsEmpty() {
		fmt.Println("Registry is empty")
		return
	}

	out, err := yaml.Marshal(registry)
	if err != nil {
		log.Fatalf("Failed to encode registry: %v", err)
	}
	fmt.Print(string(out))
}

func runTeardown(cmd *cobra.Command, args []string) {
	svc, closer := setupService()
	defer closer()

	if err := svc.Teardown(context.Background()); err != nil {
		log.Fatalf("Failed to tear down registry: %v", err)
	}
	fmt.Println("Registry torn down")
}

// printChanges prints one line per created or updated object. Unchanged
// objects stay quiet.
func printChanges(changes []services.Change) {
	changed := 0
	for _, c := range changes {
		switch c.Action {
		case services.ActionCreate:
			fmt.Printf("Created %s %s\n", kindLabel(c.Kind), c.Name)
			changed++
		case services.ActionUpdate:
			fmt.Printf("Updated %s %s\n", kindLabel(c.Kind), c.Name)
			changed++
		}
	}
	if changed == 0 {
		fmt.Println("No changes to registry")
	}
}

func printSummary() {
	summary := definitions.Summarize()
	fmt.Println()
	fmt.Println("Feature Store Summary:")
	fmt.Printf("Entities: %d\n", summary.Entities)
	fmt.Printf("Feature Views: %d\n", summary.FeatureViews)
	fmt.Printf("Feature Services: %d\n", summary.FeatureServices)
	fmt.Printf("Data Sources: %d\n", summary.DataSources)
}

// kindLabel turns an object kind into readable output ("feature_view"
// becomes "feature view").
func kindLabel(kind entities.ObjectKind) string {
	return strings.ReplaceAll(string(kind), "_", " ")
}
