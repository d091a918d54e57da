//go:build !gridnocheck

package grid

// validate compiles per-axis bounds checks into the checked accessors.
// Build with -tags gridnocheck to remove them.
const validate = true
