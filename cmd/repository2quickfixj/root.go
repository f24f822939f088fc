package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/msmat0/quickfixj/codegen"
	"github.com/msmat0/quickfixj/codegen/java"
	"github.com/msmat0/quickfixj/orchestra"
)

func newRootCmd() *cobra.Command {
	var (
		outputDir         string
		orchestraFile     string
		disableBigDecimal bool
		messageBaseClass  bool
		excludeSession    bool
		fixt11Package     bool
		optionsPath       string
		watch             bool
		verbose           bool
	)

	cmd := &cobra.Command{
		Use:           "repository2quickfixj",
		Short:         "Generate QuickFIX/J code from a FIX Orchestra repository",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			opts := []codegen.Option{codegen.WithLogger(logger)}
			if optionsPath != "" {
				fileOpts, err := codegen.FileOptions(optionsPath)
				if err != nil {
					return err
				}
				opts = append(opts, fileOpts...)
			}
			// Explicit flags win over the options file.
			if cmd.Flags().Changed("output-dir") {
				opts = append(opts, codegen.WithOutputDir(outputDir))
			}
			if cmd.Flags().Changed("orchestra-file") {
				opts = append(opts, codegen.WithOrchestraFile(orchestraFile))
			}
			if cmd.Flags().Changed("disableBigDecimal") {
				opts = append(opts, codegen.WithBigDecimal(!disableBigDecimal))
			}
			if cmd.Flags().Changed("generateMessageBaseClass") {
				opts = append(opts, codegen.WithMessageBaseClass(messageBaseClass))
			}
			if cmd.Flags().Changed("generateFixt11Package") && !fixt11Package {
				opts = append(opts, codegen.WithSessionPackage(false))
			}
			if excludeSession {
				opts = append(opts, codegen.WithExcludeSession(true))
			}

			cfg, err := codegen.NewConfig(opts...)
			if err != nil {
				return err
			}
			if cfg.OrchestraFile == "" {
				return codegen.NewConfigError("OrchestraFile", "", "an orchestra file is required")
			}

			if err := generate(cmd.Context(), cfg); err != nil {
				return err
			}
			if watch {
				return watchAndRegenerate(cmd.Context(), cfg, logger)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "target/generated-sources", "output directory for generated sources")
	cmd.Flags().StringVarP(&orchestraFile, "orchestra-file", "i", "", "path of the FIX Orchestra file")
	cmd.Flags().BoolVar(&disableBigDecimal, "disableBigDecimal", false, "use double instead of BigDecimal for decimal fields")
	cmd.Flags().BoolVar(&messageBaseClass, "generateMessageBaseClass", false, "generate the message base class with StandardHeader and StandardTrailer")
	cmd.Flags().BoolVar(&excludeSession, "excludeSession", false, "exclude session messages, session-exclusive groups and session-only fields")
	cmd.Flags().BoolVar(&fixt11Package, "generateFixt11Package", true, "generate session artifacts into the fixt11 packages")
	cmd.Flags().StringVar(&optionsPath, "config", "", "YAML options file")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and regenerate when the orchestra file changes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")

	return cmd
}

// generate runs one full generation pass from the configured schema file.
func generate(ctx context.Context, cfg *codegen.Config) error {
	f, err := os.Open(cfg.OrchestraFile)
	if err != nil {
		return err
	}
	defer f.Close()

	rep, err := orchestra.Decode(f)
	if err != nil {
		return err
	}
	return codegen.NewGenerator(cfg, java.NewRenderer()).Generate(ctx, rep)
}
