// Package themes holds the two site colour palettes and a pure reducer for
// switching between them. Side effects are confined to Apply, which writes a
// palette to a StyleTarget.
package themes
