// Package cmd contains the CLI commands for the plint application.
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/promptlint-go/internal/fs"
	"github.com/eykd/promptlint-go/internal/validator"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = NewRootCmd(NewFileValidator)
}

// FileValidator is the per-file validation surface the CLI drives.
type FileValidator interface {
	Validate(ctx context.Context) bool
	Report(w io.Writer) bool
}

// ValidatorFactory builds a fresh FileValidator for one file path.
// Each file argument gets its own instance; no state crosses file boundaries.
type ValidatorFactory func(path string) FileValidator

// NewFileValidator is the default factory, backed by the OS filesystem.
func NewFileValidator(path string) FileValidator {
	return validator.New(path, &fs.OSReader{})
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd(newValidator ValidatorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "plint <file> [<file>...]",
		Short:        "Validate markdown prompt templates",
		Long:         "plint checks markdown prompt templates for the required section headings and flags generic, low-specificity phrasing.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateAndReport(cmd, newValidator, args)
		},
	}

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
