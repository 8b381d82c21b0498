// =============================================================================
// Trade Processor - Main Entry Point
// =============================================================================
//
// USAGE:
//   tradeproc process        - Convert trade lines (stdin or --input) to XML
//   tradeproc validate       - Validate the configuration without processing
//   tradeproc version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Pipeline stages (tokenizer, validation, lineparser,
//                      xmlwriter, processor) plus config and logging
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/trade-processor/cmd"
)

func main() {
	cmd.Execute()
}
