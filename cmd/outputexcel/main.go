// Package main provides the CLI entry point for outputexcel.
package main

import (
	"fmt"
	"os"

	"github.com/ShotaroTanimura/outputExcel/internal/config"
	"github.com/ShotaroTanimura/outputExcel/internal/logger"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/output"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	outputPath string
	sourcePath string
	sheetName  string
	origin     string
	pretty     bool
	cellsOnly  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "outputexcel",
		Short: "Build and patch Excel workbooks from row data",
		Long: `outputexcel writes tabular row data into xlsx workbooks: it builds a new
single-sheet workbook, or replaces (or appends) one named sheet of an existing
workbook and saves the result under a new name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Job file (TOML); built-in job when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a new workbook from the configured rows",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (overrides config)")
	buildCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (overrides config)")
	buildCmd.Flags().StringVar(&origin, "origin", "", "Top-left cell of the grid (overrides config)")

	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Replace or append one sheet of an existing workbook",
		Args:  cobra.NoArgs,
		RunE:  runPatch,
	}
	patchCmd.Flags().StringVarP(&sourcePath, "source", "s", "", "Source workbook path (overrides config)")
	patchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (overrides config)")
	patchCmd.Flags().StringVar(&sheetName, "sheet", "", "Target sheet name (overrides config)")
	patchCmd.Flags().StringVar(&origin, "origin", "", "Top-left cell of the grid (overrides config)")

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Print the sheets of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	dumpCmd.Flags().StringVar(&sheetName, "sheet", "", "Only print this sheet")
	dumpCmd.Flags().BoolVar(&cellsOnly, "cells", false, "Print the sparse cell view of --sheet")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the built-in job to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInitConfig,
	}

	rootCmd.AddCommand(buildCmd, patchCmd, dumpCmd, initCmd)
	return rootCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	job := cfg.Build
	if outputPath != "" {
		job.OutputFile = outputPath
	}
	if sheetName != "" {
		job.SheetName = sheetName
	}
	if origin != "" {
		job.Origin = origin
	}

	opts := workbook.Options{
		SheetName: job.SheetName,
		Origin:    job.Origin,
	}
	if err := workbook.BuildFile(job.OutputFile, job.Rows, opts); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info("Built workbook", "path", job.OutputFile, "sheet", job.SheetName, "rows", len(job.Rows))
	return nil
}

func runPatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	job := cfg.Patch
	if sourcePath != "" {
		job.SourceFile = sourcePath
	}
	if outputPath != "" {
		job.OutputFile = outputPath
	}
	if sheetName != "" {
		job.SheetName = sheetName
	}
	if origin != "" {
		job.Origin = origin
	}

	logger.Debug("Patching workbook", "source", job.SourceFile, "sheet", job.SheetName)
	opts := workbook.Options{Origin: job.Origin}
	if err := workbook.PatchFile(job.SourceFile, job.OutputFile, job.SheetName, job.Rows, opts); err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}

	logger.Info("Patched workbook", "source", job.SourceFile, "path", job.OutputFile, "sheet", job.SheetName, "rows", len(job.Rows))
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if cellsOnly {
		if sheetName == "" {
			return fmt.Errorf("--cells requires --sheet")
		}
		rows, err := workbook.ReadCellsFile(inputPath, sheetName)
		if err != nil {
			return err
		}
		jsonData, err := output.CellsToJSON(rows, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}

	wb, err := workbook.ReadFile(inputPath)
	if err != nil {
		return err
	}

	var jsonData []byte
	if sheetName != "" {
		sheet, ok := wb.Sheet(sheetName)
		if !ok {
			return fmt.Errorf("%w: no sheet %q in %s", workbook.ErrInvalidSheetName, sheetName, inputPath)
		}
		jsonData, err = output.SheetToJSON(&sheet, pretty)
	} else {
		jsonData, err = output.ToJSON(wb, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	return config.SaveConfig(args[0], config.DefaultConfig())
}
