package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/provide-io/planetmaker/internal/watch"
	"github.com/provide-io/planetmaker/pkg/planet"
)

func watchCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch <draft>",
		Short: "Re-export whenever a draft planet or edit script changes",
		Long: `Watch a draft and rebuild on every save. A draft ending in .txt is a planet file and is
re-exported to --out. Any other draft is an edit script, run against a fresh session and
exported to --out when given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("watch")
			if err != nil {
				return err
			}
			debounce, err := a.cfg.DebounceDuration()
			if err != nil {
				return err
			}
			draft := args[0]
			if out != "" {
				out = a.ws.Resolve(out)
			}
			handler, err := a.draftHandler(draft, out)
			if err != nil {
				return err
			}

			w, err := watch.New(draft, debounce, handler, a.logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "👀 Watching %s (ctrl+c to stop)\n", w.Path())
			_ = w.Trigger(ctx)
			if err := w.Run(ctx); err != nil {
				return err
			}
			stats := w.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt %d times, %d failed\n", stats.Runs, stats.Errors)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Planet to export to")
	return cmd
}

// draftHandler picks how a draft is rebuilt from its extension.
func (a *app) draftHandler(draft, out string) (watch.Handler, error) {
	if !strings.EqualFold(filepath.Ext(draft), planet.FileExtension) {
		return a.rebuildScript(out), nil
	}
	if out == "" {
		return nil, fmt.Errorf("a planet draft needs --out")
	}
	same, err := samePath(draft, out)
	if err != nil {
		return nil, err
	}
	if same {
		return nil, fmt.Errorf("--out must differ from the draft %s", draft)
	}
	return a.rebuildPlanet(out), nil
}

func (a *app) rebuildPlanet(out string) watch.Handler {
	return func(ctx context.Context, path string) error {
		doc, err := planet.Load(path)
		if err != nil {
			return err
		}
		_, err = planet.ExportWithOptions(doc, out, a.cfg.ExportOptions(a.logger))
		return err
	}
}

func (a *app) rebuildScript(out string) watch.Handler {
	return func(ctx context.Context, path string) error {
		s := a.session()
		if err := runScript(a.runner(s), path, nil); err != nil {
			return err
		}
		if out == "" {
			return nil
		}
		_, err := s.Export(out)
		return err
	}
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
