// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

/*
Package services provides suture.Service wrappers for Forkful components.

HTTPServerService runs an *http.Server and shuts it down gracefully when the
supervisor stops it.

CategoryRefresherService warms the category cache once at startup and reloads
it on a robfig/cron schedule (cache.refresh_schedule). Overlapping runs are
skipped.

Both return ctx.Err() on a requested stop, so suture does not count the stop
as a failure.
*/
package services
