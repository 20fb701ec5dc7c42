// =============================================================================
// SpendLens - Main Entry Point
// =============================================================================
//
// SpendLens is a CLI tool that turns e-commerce order-history and refund
// exports into per-year and per-month net-spend summaries.
//
// USAGE:
//   spendlens analyze        - Interactive menu over a loaded order history
//   spendlens report         - One-shot summary of yearly and monthly totals
//   spendlens version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//
// =============================================================================

package main

import (
	"github.com/spendlens/spendlens/cmd"
)

func main() {
	cmd.Execute()
}
