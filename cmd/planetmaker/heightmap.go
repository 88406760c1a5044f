package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/provide-io/planetmaker/pkg/heightmap"
	"github.com/provide-io/planetmaker/pkg/planet"
)

func heightmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heightmap",
		Short: "Create and draw heightmaps",
	}
	cmd.AddCommand(
		heightmapNewCmd(),
		heightmapSetCmd(),
		heightmapDrawCmd(),
		heightmapClearCmd(),
		heightmapShowCmd(),
		heightmapAttachCmd(),
	)
	return cmd
}

// editHeightmap loads the named heightmap, applies fn and saves it back.
func editHeightmap(name string, fn func(m *heightmap.Map) error) (string, error) {
	a, err := setup("heightmap")
	if err != nil {
		return "", err
	}
	path, err := a.ws.HeightmapPath(name)
	if err != nil {
		return "", err
	}
	m, err := heightmap.Load(path)
	if err != nil {
		return "", err
	}
	if err := fn(m); err != nil {
		return "", err
	}
	if err := m.Save(path, a.cfg.ExportOptions(a.logger)); err != nil {
		return "", err
	}
	return m.Sparkline(sparkWidth), nil
}

const sparkWidth = 50

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", arg)
		}
		out[i] = v
	}
	return out, nil
}

func heightmapNewCmd() *cobra.Command {
	var points int
	var force bool
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a flat heightmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("heightmap")
			if err != nil {
				return err
			}
			path, err := a.ws.HeightmapPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := heightmap.New(points).Save(path, a.cfg.ExportOptions(a.logger)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().IntVarP(&points, "points", "n", planet.DefaultHeightmapPoints, "Number of points")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing heightmap")
	return cmd
}

func heightmapSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <index> <value>",
		Short: "Set one point, clamped to [0,1]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%q is not an index", args[1])
			}
			v, err := parseFloats(args[2:])
			if err != nil {
				return err
			}
			spark, err := editHeightmap(args[0], func(m *heightmap.Map) error {
				return m.Set(i, v[0])
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), spark)
			return nil
		},
	}
}

func heightmapDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <name> <x> <y> <width> <height>",
		Short: "Apply a pointer position on a canvas of the given size",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			var index int
			spark, err := editHeightmap(args[0], func(m *heightmap.Map) error {
				i, drawErr := m.Draw(v[0], v[1], v[2], v[3])
				index = i
				return drawErr
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "point %d\n%s\n", index, spark)
			return nil
		},
	}
}

func heightmapClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <name>",
		Short: "Reset every point to 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := editHeightmap(args[0], func(m *heightmap.Map) error {
				m.Clear()
				return nil
			})
			return err
		},
	}
}

func heightmapShowCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a heightmap as a sparkline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("heightmap")
			if err != nil {
				return err
			}
			path, err := a.ws.HeightmapPath(args[0])
			if err != nil {
				return err
			}
			m, err := heightmap.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d points)\n%s\n", args[0], m.Len(), m.Sparkline(width))
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", sparkWidth, "Columns")
	return cmd
}

func heightmapAttachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <heightmap> <planet>",
		Short: "Copy a heightmap into a planet's HEIGHTMAP section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup("heightmap")
			if err != nil {
				return err
			}
			hmPath, err := a.ws.HeightmapPath(args[0])
			if err != nil {
				return err
			}
			m, err := heightmap.Load(hmPath)
			if err != nil {
				return err
			}
			path := a.ws.Resolve(args[1])
			doc, err := planet.Load(path)
			if err != nil {
				return err
			}
			m.Attach(doc)
			if _, err := planet.ExportWithOptions(doc, path, a.cfg.ExportOptions(a.logger)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Attached %s to %s\n", args[0], path)
			return nil
		},
	}
}
