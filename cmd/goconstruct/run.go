package main

import (
	"github.com/philipparndt/goconstruct/internal/report"
	"github.com/philipparndt/goconstruct/internal/script"
	"github.com/spf13/cobra"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Execute a construction script and print the resulting canvas",
	Long: `Execute every statement of a construction script against a fresh engine.
Statements whose construction fails (for example a zero-length line) are
reported as warnings and the script continues; malformed statements stop it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the snapshot as JSON")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}

	eng, warnings, err := script.RunFile(cmd.Context(), args[0], newLogger(), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if runJSON {
		return report.JSON(out, eng.Snapshot())
	}
	report.Text(out, eng.Snapshot())
	report.Warnings(out, warnings)
	return nil
}
