package rca

import "time"

const (
	name = "rust-code-analysis-cli"
	// Large source trees take a while even with per-file parallelism.
	timeout = 10 * time.Minute
)
