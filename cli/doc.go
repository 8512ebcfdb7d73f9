// Package cli wires the gas commands together.
//
// All state lives on an App value built at process start: the resolved
// configuration, the console, the prompt loader, and lazily constructed
// git and AI clients. Commands receive the App explicitly, so tests can
// swap in mock runners and generators without touching globals.
package cli
