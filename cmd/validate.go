package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rulesPointer is appended to the report when any file fails validation.
const rulesPointer = "See Rules 1-10 in README.md for the prompt engineering guidelines"

// ValidationFailedError is returned when any file reports validation errors.
type ValidationFailedError struct {
	Failed int
	Total  int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed for %d of %d file(s)", e.Failed, e.Total)
}

// ExitCode returns the exit code for failed validation (always 1).
func (e *ValidationFailedError) ExitCode() int {
	return 1
}

// runValidateAndReport validates each file argument with a fresh validator
// and renders its report to stdout. It returns a ValidationFailedError when
// any file has errors; warnings alone never fail the run.
func runValidateAndReport(cmd *cobra.Command, newValidator ValidatorFactory, paths []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range paths {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		v := newValidator(path)
		v.Validate(cmd.Context())
		if !v.Report(out) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintln(out, rulesPointer)
		return &ValidationFailedError{Failed: failed, Total: len(paths)}
	}
	return nil
}
