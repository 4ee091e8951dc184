// Package rca wraps the rust-code-analysis-cli binary.
package rca

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/farcloser/primordium/fault"
)

// Generate runs rust-code-analysis-cli over sourceDir and fills outputDir
// with one JSON metrics document per analyzed source file. Any pre-existing
// output directory is removed first so stale documents never leak into a
// fresh run. It requires rust-code-analysis-cli to be available in the
// system PATH.
func Generate(ctx context.Context, sourceDir, outputDir string) error {
	slog.Debug("rca.Generate", "source", sourceDir, "output", outputDir)

	toolPath, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s", fault.ErrMissingRequirements, name)
	}

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("clearing output directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // sourceDir is intentionally user-provided input for analysis
	cmd := exec.CommandContext(ctx, toolPath,
		"-p", sourceDir,
		"-m",
		"-O", "json",
		"--pr",
		"-o", outputDir,
	)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: after %v", fault.ErrTimeout, timeout)
		}

		return fmt.Errorf("%w: %s: %w", fault.ErrCommandFailure, stderr.String(), err)
	}

	return nil
}
