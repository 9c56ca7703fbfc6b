//go:build evalctx_strict

package evalctx

// strictPanics is true under the evalctx_strict build tag: unbalanced
// Grow/Pop pairs panic instead of silently degrading (spec §5).
const strictPanics = true
