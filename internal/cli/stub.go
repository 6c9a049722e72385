package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/groupgen/groupgen/internal/config"
	"github.com/groupgen/groupgen/internal/stubs"
)

var (
	stubsPublishDir   string
	stubsPublishForce bool
)

func init() {
	stubsPublishCmd.Flags().StringVar(&stubsPublishDir, "dir", "", "Target directory (default: stubs_dir setting or ./stubs)")
	stubsPublishCmd.Flags().BoolVar(&stubsPublishForce, "force", false, "Overwrite stubs that already exist")
	stubsCmd.AddCommand(stubsListCmd)
	stubsCmd.AddCommand(stubsPublishCmd)
	rootCmd.AddCommand(stubsCmd)
}

var stubsCmd = &cobra.Command{
	Use:   "stubs",
	Short: "Inspect and customize the stub templates",
}

var stubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stubs in use and where each is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load(projectDir)
		if err != nil {
			return err
		}
		settings, err := store.Settings()
		if err != nil {
			return err
		}
		set, err := stubs.Open(resolveProjectPath(settings.StubsDir), buildVersion)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tFILE\tREQUIRED\tOPTIONAL\tSOURCE")
		for _, name := range set.Names() {
			stub, err := set.Load(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				name, stub.File,
				dashIfEmpty(strings.Join(stub.Schema.Required, ",")),
				dashIfEmpty(strings.Join(stub.Schema.Optional, ",")),
				set.Source(name),
			)
		}
		return w.Flush()
	},
}

var stubsPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy the built-in stubs into the project for editing",
	Long: `Copy the built-in stubs into the project. Edited copies override the
built-in ones file by file; point the stubs_dir setting at the directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		store, err := config.Load(projectDir)
		if err != nil {
			return err
		}

		dir := stubsPublishDir
		if dir == "" {
			dir = store.Get(config.KeyStubsDir)
		}
		if dir == "" {
			dir = "stubs"
		}

		written, err := stubs.Publish(resolveProjectPath(dir), stubsPublishForce)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			fmt.Fprintln(out, mutedStyle.Render("All stubs already published; use --force to overwrite."))
		} else {
			fmt.Fprintf(out, "Published %d stub file(s) to %s\n", len(written), resolveProjectPath(dir))
			for _, f := range written {
				fmt.Fprintf(out, "  %s\n", f)
			}
		}

		if store.Get(config.KeyStubsDir) == "" {
			if err := store.Set(config.KeyStubsDir, dir); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Could not record stubs_dir: %v\n", err)
			} else {
				fmt.Fprintf(out, "Set %s = %s\n", config.KeyStubsDir, dir)
			}
		}
		return nil
	},
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
