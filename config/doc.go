// Package config provides layered configuration for the gas CLI.
//
// Configuration is resolved from two scope files with clear precedence:
//  1. Local config (.gas.yaml in the git root, highest priority)
//  2. Global config (~/.config/gas/config.yml)
//  3. Built-in schema defaults (lowest priority)
//
// # Basic Usage
//
// Create a manager and read resolved values:
//
//	store := config.NewStore(gitRoot)
//	mgr, err := config.NewManager(store)
//	if err != nil {
//	    return err
//	}
//
//	cfg := mgr.Current()
//	fmt.Println(cfg.AI.Model)        // "CohereLabs/c4ai-command-a-03-2025"
//	fmt.Println(cfg.Source("ai.model")) // "default"
//
// # Setting Values
//
// Set persists a single dot-path value to the chosen scope file and
// re-resolves, so subsequent reads observe the change:
//
//	_, err := mgr.Set("user.language", "fr", config.ScopeLocal)
//
// # Schema
//
// Every settable value is declared in the schema with a kind, a default,
// and optional numeric constraints. Values are validated on both resolve
// and set; a scope file value that fails its constraint surfaces as
// ErrValidation rather than being silently accepted.
//
// # Errors
//
//   - ErrInvalidPath: a dot path that does not name a declared leaf field
//   - ErrValidation: a value that fails type coercion or a range constraint
//   - StorageError: a scope file that could not be read, parsed, or written
//
// A missing scope file is not an error; it resolves as an empty mapping.
package config
