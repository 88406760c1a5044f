package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/planetmaker/internal/config"
	"github.com/provide-io/planetmaker/internal/workspace"
	"github.com/provide-io/planetmaker/pkg/logging"
	"github.com/provide-io/planetmaker/pkg/planet"
	"github.com/provide-io/planetmaker/pkg/script"
	"github.com/provide-io/planetmaker/pkg/session"
)

const version = "0.1.0"

var (
	configPath  string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

// buildStamp describes the commit the binary was built from, as recorded by the go
// toolchain. Fields the toolchain did not record read "unknown".
type buildStamp struct {
	Revision string
	Time     string
	Modified bool
}

func readBuildStamp() buildStamp {
	stamp := buildStamp{Revision: "unknown", Time: "unknown"}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			stamp.Revision = setting.Value
			if len(stamp.Revision) > 12 {
				stamp.Revision = stamp.Revision[:12]
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				stamp.Time = t.UTC().Format(time.RFC3339)
			}
		case "vcs.modified":
			stamp.Modified = setting.Value == "true"
		}
	}
	return stamp
}

func (b buildStamp) String() string {
	rev := b.Revision
	if b.Modified {
		rev += "+dirty"
	}
	return fmt.Sprintf("commit %s, built %s", rev, b.Time)
}

func printVersion() {
	fmt.Printf("planetmaker %s (%s)\n", version, readBuildStamp())
}

func init() {
	rootCmd = &cobra.Command{
		Use:           "planetmaker",
		Short:         "Create and edit planet files for Spaceflight Simulator",
		Long:          `Create, edit and export the planet configuration files read by Spaceflight Simulator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default $"+config.EnvConfig+" or the user config folder)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newCmd(),
		showCmd(),
		exportCmd(),
		verifyCmd(),
		applyCmd(),
		editCmd(),
		watchCmd(),
		listCmd(),
		heightmapCmd(),
		configCmd(),
	)
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// app is what every subcommand needs: configuration, a logger and the planets folder.
type app struct {
	cfg    *config.Config
	logger hclog.Logger
	ws     *workspace.Workspace
}

func setup(name string) (*app, error) {
	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger("planetmaker-"+name, logging.ResolveLevel(logLevel, cfg.LogLevel), os.Stderr)
	logger.Debug("Configuration loaded", "planets_dir", cfg.PlanetsDir, "version", cfg.Version)
	return &app{cfg: cfg, logger: logger, ws: workspace.New(cfg.PlanetsDir)}, nil
}

// session starts a session on a default planet carrying the configured version.
func (a *app) session() *session.Session {
	s := session.New(a.logger, a.cfg.ExportOptions(a.logger))
	if a.cfg.Version != "" {
		doc := planet.Default()
		doc.Version = a.cfg.Version
		s.Use(doc)
	}
	return s
}

func (a *app) runner(s *session.Session) *script.Runner {
	r := script.NewRunner(s, a.logger)
	r.Resolve = a.ws.Resolve
	return r
}

// planetName is the display name of a planet file: its base name without extension.
func planetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
