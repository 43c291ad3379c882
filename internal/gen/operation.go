package gen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks whether the operation would succeed without performing it.
// force=true skips conflict checks (e.g. file already exists).
//
// Execute performs the actual operation. It should only be called after
// Validate succeeds.
//
// Description returns a human-readable description for output (e.g.
// "Create ui/client_app.h (312 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file with content.
//
// Validation is side-effect free: it checks for a file conflict (unless
// force=true) and rejects nil content (empty content is allowed). Execution
// creates parent directories as needed and writes the file with Mode.
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// MkdirOp creates a single new directory.
//
// Unlike os.MkdirAll, an existing path is a conflict: two planned directories
// resolving to the same path (e.g. duplicate module names) must surface as an
// error rather than silently merging their contents. force does not bypass
// the check.
type MkdirOp struct {
	Path string
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if _, err := os.Stat(op.Path); err == nil {
		return fmt.Errorf("directory already exists: %s", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.Mkdir(op.Path, 0755)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}
