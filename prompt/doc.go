// Package prompt loads and renders the prompt templates used for
// generation.
//
// Prompts are text/template files resolved in order from:
//  1. .gas/prompts/ in the repository (user overrides)
//  2. Templates embedded in the gas binary
//
// Built-in prompts: "explain", "commit", "pr". Each takes a Vars value
// carrying the diff content and user preferences; non-English language
// preferences render as an instruction at the top of the prompt.
//
// Example usage:
//
//	loader := prompt.NewLoader(gitRoot)
//	p, err := loader.Explain(prompt.Vars{
//	    Changes:  diff,
//	    Language: cfg.User.Language,
//	    Detailed: true,
//	})
package prompt
