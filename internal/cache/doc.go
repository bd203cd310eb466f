// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

// Package cache provides the in-memory caches used by the API.
//
// TTL is a generic, thread-safe map whose entries expire after a fixed
// duration. CategoryCache builds on it to serve the category list that
// accompanies every restaurant index page; the list changes rarely, so it
// is loaded once per TTL and refreshed on a cron schedule by the supervisor.
package cache
