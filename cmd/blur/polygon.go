package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/gm"
)

var (
	flagRadius float32
	flagOffset float32
	flagFormat string
)

var polygonCmd = &cobra.Command{
	Use:   "polygon <points>",
	Short: "Print the vertices of a regular polygon",
	Long: `Print the vertices of a regular polygon centred on the origin.

The first vertex points along the offset heading (0 = up) and the
rest follow clockwise.

Formats:
  table  - one vertex per line with its heading
  yaml   - a list of {x, y} pairs
  plot   - the polygon drawn in the terminal

Examples:
  blur polygon 4
  blur polygon 6 --radius 10 --offset 30
  blur polygon 12 --radius 8 --format plot`,
	Args: cobra.ExactArgs(1),
	RunE: runPolygon,
}

func init() {
	polygonCmd.Flags().Float32Var(&flagRadius, "radius", 1, "Distance of every vertex from the centre")
	polygonCmd.Flags().Float32Var(&flagOffset, "offset", 0, "Heading of the first vertex in degrees")
	polygonCmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table, yaml, plot")
}

const maxPlotRadius = 40

type vertex struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func runPolygon(cmd *cobra.Command, args []string) error {
	points, err := strconv.Atoi(args[0])
	if err != nil || points <= 0 {
		return fmt.Errorf("points must be a positive integer, got %q", args[0])
	}

	offset := gm.FromDegrees(flagOffset)
	out := cmd.OutOrStdout()

	switch flagFormat {
	case "table":
		var vs gm.Vertices
		gm.CircleVector(points, flagRadius, offset, &vs)
		printVertexTable(out, vs)
		return nil

	case "yaml":
		vs := make([]vertex, 0, points)
		gm.CircleVector(points, flagRadius, offset, gm.CollectorFunc(func(x, y float32) {
			vs = append(vs, vertex{X: x, Y: y})
		}))
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(vs); err != nil {
			return err
		}
		return enc.Close()

	case "plot":
		if flagRadius > maxPlotRadius {
			return fmt.Errorf("plot radius is limited to %d", maxPlotRadius)
		}
		fmt.Fprintln(out, plotPolygon(points, flagRadius, offset))
		return nil
	}

	return fmt.Errorf("unknown format %q", flagFormat)
}

func printVertexTable(out io.Writer, vs gm.Vertices) {
	fmt.Fprintf(out, "  %-3s  %10s  %10s  %s\n", "#", "x", "y", "heading")
	for i, v := range vs {
		heading := gm.FromDirection(v).Normalized()
		fmt.Fprintf(out, "  %-3d  %10.4f  %10.4f  %s\n", i, v.X(), v.Y(), heading)
	}
}

// plotPolygon draws the outline and vertices on a screen just big enough
// for the polygon.
func plotPolygon(points int, radius float32, offset gm.Angle) string {
	r := max(core.Round(radius), 1)
	w := 2*r*core.CellAspect + 3
	h := 2*r + 3
	s := core.NewScreen(w, h)
	cx, cy := s.Center()

	var vs gm.Vertices
	gm.CircleVector(points, radius, offset, &vs)

	outline := core.NewPlotter(s, cx, cy, '·', core.ColorGray)
	for i, v := range vs {
		next := vs[(i+1)%len(vs)]
		x0, y0 := outline.Cell(v.X(), v.Y())
		x1, y1 := outline.Cell(next.X(), next.Y())
		s.DrawLine(x0, y0, x1, y1, '·', core.ColorGray)
	}

	p := core.NewPlotter(s, cx, cy, '◇', core.ColorDefault)
	gm.CircleVector(points, radius, offset, p)
	s.Set(cx, cy, '+')

	return s.String()
}
