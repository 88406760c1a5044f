package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/planetmaker/internal/tui"
	"github.com/provide-io/planetmaker/pkg/planet"
	"github.com/provide-io/planetmaker/pkg/script"
)

var errVerifyFailed = errors.New("❌ verification failed")

func newCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a planet with default values in the planets folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("new")
			if err != nil {
				return err
			}
			path, err := a.ws.PlanetPath(args[0])
			if err != nil {
				return err
			}
			if err := a.ws.Ensure(); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			doc := planet.Default()
			doc.Version = a.cfg.Version
			written, err := planet.ExportWithOptions(doc, path, a.cfg.ExportOptions(a.logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", written)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing planet")
	return cmd
}

func showCmd() *cobra.Command {
	var asScript bool
	cmd := &cobra.Command{
		Use:   "show <planet>",
		Short: "Print a planet summary, or the script that rebuilds it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("show")
			if err != nil {
				return err
			}
			s := a.session()
			path := a.ws.Resolve(args[0])
			if err := s.Load(path); err != nil {
				return err
			}
			if asScript {
				return script.Dump(cmd.OutOrStdout(), s.Editors())
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.Summary(planetName(path), s.Document(), tui.DefaultStyles()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asScript, "script", false, "Print as an apply script")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <planet> [output]",
		Short: "Load a planet and write it back normalized, optionally to a new file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("export")
			if err != nil {
				return err
			}
			s := a.session()
			src := a.ws.Resolve(args[0])
			if err := s.Load(src); err != nil {
				return err
			}
			dst := src
			if len(args) == 2 {
				dst = a.ws.Resolve(args[1])
			}
			written, err := s.Export(dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %s\n", written)
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <planet>...",
		Short: "Check that planet files load and satisfy the export rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("verify")
			if err != nil {
				return err
			}
			failed := 0
			for _, arg := range args {
				report := planet.VerifyFile(a.ws.Resolve(arg), a.logger)
				printReport(cmd.OutOrStdout(), report)
				if !report.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errVerifyFailed, failed, len(args))
			}
			return nil
		},
	}
}

func printReport(w io.Writer, r *planet.Report) {
	if r.OK() {
		fmt.Fprintf(w, "✓ %s\n", r.Path)
	} else {
		fmt.Fprintf(w, "✗ %s\n", r.Path)
	}
	for _, section := range r.Missing {
		fmt.Fprintf(w, "    missing %s (defaults apply)\n", section)
	}
	for _, p := range r.Problems {
		fmt.Fprintf(w, "    %v\n", p)
	}
}

func applyCmd() *cobra.Command {
	var load, out string
	cmd := &cobra.Command{
		Use:   "apply <script>",
		Short: "Run an edit script (use - for stdin)",
		Long: `Run an edit script against a planet. Each line is one command:

  set <section> <field> <value>    add <section> <group>
  remove <section> <group> <i>     color <r> <g> <b>
  heightmap <file>                 reset
  load <file>                      export [file]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("apply")
			if err != nil {
				return err
			}
			s := a.session()
			if load != "" {
				if err := s.Load(a.ws.Resolve(load)); err != nil {
					return err
				}
			}
			if err := runScript(a.runner(s), args[0], cmd.InOrStdin()); err != nil {
				return err
			}
			if out != "" {
				written, err := s.Export(a.ws.Resolve(out))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %s\n", written)
			}
			a.logger.Info("Script applied", "state", s.State().String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&load, "load", "l", "", "Planet to load before the script runs")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Export here after the script runs")
	return cmd
}

func runScript(r *script.Runner, path string, stdin io.Reader) error {
	if path == "-" {
		return r.Run(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return &planet.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return r.Run(f)
}

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <planet>",
		Short: "Edit a planet in the terminal; a missing planet starts from defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("edit")
			if err != nil {
				return err
			}
			// The form owns the screen, errors surface in its status line.
			a.logger = hclog.NewNullLogger()
			s := a.session()
			path := a.ws.Resolve(args[0])
			if _, err := os.Stat(path); err == nil {
				if err := s.Load(path); err != nil {
					return err
				}
			}
			_, err = tea.NewProgram(tui.New(s, path), tea.WithAltScreen()).Run()
			return err
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the planets in the planets folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("list")
			if err != nil {
				return err
			}
			entries, err := a.ws.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No planets in %s\n", a.ws.Dir)
				return nil
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(tui.Border)).
				Headers("PLANET", "SIZE", "MODIFIED")
			for _, e := range entries {
				t.Row(e.Name, strconv.FormatInt(e.Size, 10), e.ModTime.Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintln(cmd.OutOrStdout(), a.ws.Dir)
			return nil
		},
	}
}
