// Package render writes styled console output for the gas CLI.
//
// A Console wraps an io.Writer with lipgloss styling: status lines,
// bordered panels for generated text, and tables for configuration
// and history views. Emoji decorations are gated by the resolved
// user.emoji_enabled setting.
package render
