package main

import (
	"fmt"

	"github.com/philipparndt/goconstruct/internal/config"
	"github.com/philipparndt/goconstruct/internal/report"
	"github.com/philipparndt/goconstruct/internal/script"
	"github.com/philipparndt/goconstruct/pkg/geometry"
	"github.com/spf13/cobra"
)

var snapAt string

var snapCmd = &cobra.Command{
	Use:   "snap [script]",
	Short: "Show where a click would land after running a script",
	Long: `Run a construction script, then resolve a query point against the
resulting canvas using the grid, vertex and intersection snapping rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnap,
}

func init() {
	snapCmd.Flags().StringVar(&snapAt, "at", "", "query point as x,y")
	snapCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(snapCmd)
}

func runSnap(cmd *cobra.Command, args []string) error {
	v, err := config.ParseVector(snapAt)
	if err != nil {
		return fmt.Errorf("--at %q: %w", snapAt, err)
	}
	query := geometry.Point2D{X: v.X, Y: v.Y}

	opts, err := engineOptions()
	if err != nil {
		return err
	}
	eng, warnings, err := script.RunFile(cmd.Context(), args[0], newLogger(), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Snap(out, query, eng.Snap(query))
	report.Warnings(out, warnings)
	return nil
}
