package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/goconstruct/internal/element"
	"github.com/philipparndt/goconstruct/internal/intersection"
	"github.com/philipparndt/goconstruct/internal/report"
	"github.com/philipparndt/goconstruct/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	intersectLines   []string
	intersectCircles []string
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Compute the pairwise intersections of ad-hoc lines and circles",
	Long: `Build the given lines and circles as elements and print every intersection
between them, merged the same way the engine merges coincident points.`,
	Args: cobra.NoArgs,
	RunE: runIntersect,
}

func init() {
	intersectCmd.Flags().StringArrayVar(&intersectLines, "line", nil, "line segment as x1,y1,x2,y2 (repeatable)")
	intersectCmd.Flags().StringArrayVar(&intersectCircles, "circle", nil, "circle as cx,cy,r (repeatable)")
	rootCmd.AddCommand(intersectCmd)
}

func runIntersect(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromFlags()
	if err != nil {
		return err
	}

	store := element.NewStore()
	for _, arg := range intersectLines {
		v, err := parseFloats(arg, 4)
		if err != nil {
			return fmt.Errorf("--line %q: %w", arg, err)
		}
		l, err := geometry.NewLine2D(geometry.Point2D{X: v[0], Y: v[1]}, geometry.Point2D{X: v[2], Y: v[3]})
		if err != nil {
			return fmt.Errorf("--line %q: %w", arg, err)
		}
		if _, err := store.Add(element.New(element.LineShape{Line: l}, settings.DefaultColor)); err != nil {
			return err
		}
	}
	for _, arg := range intersectCircles {
		v, err := parseFloats(arg, 3)
		if err != nil {
			return fmt.Errorf("--circle %q: %w", arg, err)
		}
		c, err := geometry.NewCircle2D(geometry.Point2D{X: v[0], Y: v[1]}, v[2])
		if err != nil {
			return fmt.Errorf("--circle %q: %w", arg, err)
		}
		if _, err := store.Add(element.New(element.CircleShape{Circle: c}, settings.DefaultColor)); err != nil {
			return err
		}
	}
	if store.Len() < 2 {
		return fmt.Errorf("need at least two shapes, got %d", store.Len())
	}

	out := cmd.OutOrStdout()
	for _, e := range store.All() {
		fmt.Fprintf(out, "%s\n", report.Describe(e))
	}
	fmt.Fprintln(out)
	report.Intersections(out, intersection.Aggregate(store.All(), settings.Tolerance))
	return nil
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
