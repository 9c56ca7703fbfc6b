//go:build !evalctx_strict

package evalctx

const strictPanics = false
