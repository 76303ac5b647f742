// Package token provides scalar-to-text conversions for A2L output:
// integer and hex formatting, float formatting, and string escaping.
// All functions are stateless and allocation-free on their fast paths.
package token
