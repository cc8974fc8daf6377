// Package fs provides filesystem adapters that implement validator interfaces.
package fs

import (
	"context"
	"os"
)

// OSReader implements validator.FileReader using os.ReadFile.
type OSReader struct{}

// ReadFile reads the entire file at path as a single scoped acquisition.
func (r *OSReader) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
