package validator

import (
	"fmt"
	"io"
	"path/filepath"
)

// Report renders a human-readable summary of the last Validate call to w:
// a header line with the file name, then either a success line or labeled
// ERRORS and WARNINGS blocks with one bullet per finding. It returns the
// same boolean as Validate.
func (v *Validator) Report(w io.Writer) bool {
	fmt.Fprintf(w, "Validating: %s\n\n", filepath.Base(v.path))

	if len(v.errs) == 0 && len(v.warns) == 0 {
		fmt.Fprintln(w, "All checks passed.")
		return true
	}

	if len(v.errs) > 0 {
		fmt.Fprintln(w, "ERRORS:")
		for _, f := range v.errs {
			fmt.Fprintf(w, "  - %s\n", f.Message)
		}
		fmt.Fprintln(w)
	}

	if len(v.warns) > 0 {
		fmt.Fprintln(w, "WARNINGS:")
		for _, f := range v.warns {
			fmt.Fprintf(w, "  - %s\n", f.Message)
		}
		fmt.Fprintln(w)
	}

	return len(v.errs) == 0
}
