package internal

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultExt is the suffix matched when no extension is configured.
const DefaultExt = ".md"

// Output formats for the final report.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ScanOptions - public options from CLI.
type ScanOptions struct {
	Root       string
	Ext        string
	Depth      int
	SkipErrors bool
	Output     string
}

// Validate checks invariants.
func (o *ScanOptions) Validate() error {
	if o.Root == "" {
		return errors.New("root directory is required")
	}
	if o.Depth < 0 {
		return errors.New("depth cannot be negative")
	}
	switch o.Output {
	case "", OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (use %q or %q)", o.Output, OutputText, OutputJSON)
	}
	return nil
}

// Prepare normalizes the extension and fills defaults.
func (o *ScanOptions) Prepare() {
	if o.Ext == "" {
		o.Ext = DefaultExt
	}
	if !strings.HasPrefix(o.Ext, ".") {
		o.Ext = "." + o.Ext
	}
	if o.Output == "" {
		o.Output = OutputText
	}
}

// matchesExt reports whether a file name ends with the configured suffix.
// Matching is case-sensitive suffix equality.
func (o *ScanOptions) matchesExt(name string) bool {
	return strings.HasSuffix(name, o.Ext)
}
