package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/groupgen/groupgen/internal/config"
	"github.com/groupgen/groupgen/internal/generator"
	"github.com/groupgen/groupgen/internal/prompt"
	"github.com/groupgen/groupgen/internal/stubs"
	"github.com/groupgen/groupgen/internal/workspace"
)

var (
	makeAnswers         string
	makePlain           bool
	makeForce           bool
	makeStrict          bool
	makeDryRun          bool
	makePersistProvider bool
)

func init() {
	makeCmd.Flags().StringVar(&makeAnswers, "answers", "", "Replay answers from a YAML script instead of prompting")
	makeCmd.Flags().BoolVar(&makePlain, "plain", false, "Use plain numbered prompts instead of the interactive terminal UI")
	makeCmd.Flags().BoolVar(&makeForce, "force", false, "Overwrite files that already exist")
	makeCmd.Flags().BoolVar(&makeStrict, "strict", false, "Fail on missing or undeclared stub placeholders")
	makeCmd.Flags().BoolVar(&makeDryRun, "dry-run", false, "Print the rendered files instead of writing them")
	makeCmd.Flags().BoolVar(&makePersistProvider, "persist-provider", false, "Write the repository service provider when the project has none")
	rootCmd.AddCommand(makeCmd)
}

var makeCmd = &cobra.Command{
	Use:     "make [name]",
	Aliases: []string{"make:group"},
	Short:   "Scaffold a feature group",
	Long: `Scaffold a feature group. You are asked whether the group needs a controller,
a model and a repository pair, which methods they get, and which model fields
are fillable. Files are written to <groups_dir>/<Name>/.

Examples:
  groupgen make billing
  groupgen make order --answers order.yaml --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMake,
}

func runMake(cmd *cobra.Command, args []string) error {
	log := newLogger()
	out := cmd.OutOrStdout()

	store, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	settings, err := store.Settings()
	if err != nil {
		return err
	}
	if makeStrict {
		settings.Strict = true
	}
	if makePersistProvider {
		settings.PersistProvider = true
	}

	set, err := stubs.Open(resolveProjectPath(settings.StubsDir), buildVersion)
	if err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	driver, scriptName, err := selectDriver(cmd)
	if err != nil {
		return err
	}
	if name == "" {
		name = scriptName
	}

	ws := workspace.New(projectDir, makeForce, log)
	gen := generator.New(driver, set, generator.LayoutFrom(settings), ws, generator.Options{
		Strict:          settings.Strict,
		PersistProvider: settings.PersistProvider,
	}, log)

	plan, err := gen.Run(cmd.Context(), name)
	if err != nil {
		return err
	}

	if makeDryRun {
		printPlan(out, plan)
		return printInstructions(cmd.Context(), driver, plan.Instructions)
	}

	result, err := ws.Apply(plan.Artifacts)
	printResult(out, plan, result)
	if err != nil {
		return err
	}
	return printInstructions(cmd.Context(), driver, plan.Instructions)
}

// selectDriver picks the prompt driver: a replayed script, plain line prompts
// when stdin is not a terminal or --plain is set, else the terminal UI. It also
// returns the group name recorded in the script, if any.
func selectDriver(cmd *cobra.Command) (prompt.Driver, string, error) {
	if makeAnswers != "" {
		script, err := prompt.LoadScript(makeAnswers)
		if err != nil {
			return nil, "", err
		}
		return prompt.NewScript(script.Answers, cmd.OutOrStdout()), script.Name, nil
	}
	if makePlain || !prompt.IsTerminal(os.Stdin) {
		return prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout()), "", nil
	}
	return prompt.NewSurvey(cmd.OutOrStdout()), "", nil
}

func resolveProjectPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}

func printResult(w io.Writer, plan *generator.Plan, result *workspace.Result) {
	if len(plan.Artifacts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Nothing to generate."))
		return
	}
	written := 0
	if result != nil {
		written = len(result.Files)
	}
	fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render("Created group "+plan.Group), pathStyle.Render("at "+plan.Dir+string(filepath.Separator)))
	for _, a := range plan.Artifacts[:written] {
		fmt.Fprintf(w, "  %s\n", a.Path)
	}
	if written < len(plan.Artifacts) {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("  %d file(s) not written", len(plan.Artifacts)-written)))
	}
}

// printInstructions hands the manual wiring steps to the prompt driver, which
// owns the conversation with the user.
func printInstructions(ctx context.Context, driver prompt.Driver, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	if err := driver.Info(ctx, "\n"+titleStyle.Render("Next steps:")); err != nil {
		return fmt.Errorf("printing instructions: %w", err)
	}
	for i, line := range lines {
		if err := driver.Info(ctx, fmt.Sprintf("  %d. %s", i+1, line)); err != nil {
			return fmt.Errorf("printing instructions: %w", err)
		}
	}
	return nil
}

func printPlan(w io.Writer, plan *generator.Plan) {
	for _, a := range plan.Artifacts {
		fmt.Fprintf(w, "%s\n%s\n", pathStyle.Render("==> "+a.Path), a.Content)
	}
	if plan.Provider != nil && !containsPath(plan, plan.Provider.Path) {
		fmt.Fprintln(w, mutedStyle.Render("(service provider scaffold rendered but not written; use --persist-provider)"))
	}
}

func containsPath(plan *generator.Plan, path string) bool {
	for _, a := range plan.Artifacts {
		if a.Path == path {
			return true
		}
	}
	return false
}
