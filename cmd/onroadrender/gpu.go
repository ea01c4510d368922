//go:build !nogpu

package main

// GPU-accelerated fills, falling back to the CPU rasterizer when no
// adapter is available. Build with -tags nogpu for a CPU-only binary.
import _ "github.com/gogpu/gg/gpu"
