// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package logging provides centralized zerolog-based structured logging for Forkful.
//
// The global logger sits behind an atomic pointer: Init swaps it, the level
// helpers read it. Every entry carries a "service" field ("forkful" for the
// server, "forkful-seed" for the seed command) so both binaries can share a
// log pipeline.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int64("restaurant_id", id).Msg("View count incremented")
//	logging.Error().Err(err).Msg("Top ranking query failed")
//
//	// Request-scoped logging (request_id is added by the HTTP middleware)
//	logging.Ctx(r.Context()).Warn().Msg("Restaurant not found")
//
// # Configuration
//
// Environment Variables (mapped through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Suture Integration
//
// The supervisor tree logs through log/slog. NewSlogLogger returns a
// *slog.Logger whose records are written by the global zerolog logger, so
// supervisor events and application logs share one output stream.
package logging
