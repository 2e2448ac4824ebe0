// Package main hosts the studycafe CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once (file, then the
// STUDYCAFE_API_URL environment variable, then flags) and hands the
// resulting API client to each subcommand. The same directory and detail
// controllers that drive the terminal UI back the scriptable commands, so
// sorting, filtering and not-found handling behave identically in both.
package main
