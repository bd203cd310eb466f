// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

/*
Command server runs the Forkful HTTP API.

Startup order:

 1. Configuration: defaults, optional config.yaml, environment (koanf v2)
 2. Logging: zerolog global logger from LOG_LEVEL / LOG_FORMAT
 3. Database: DuckDB with versioned migrations
 4. Mock data: only when SEED_MOCK_DATA=true and the database is empty
 5. Auth: JWT signing with JWT_SECRET (ephemeral outside production)
 6. Supervisor tree: HTTP server plus the scheduled category refresh

Common environment variables:

	DUCKDB_PATH                 database file (default /data/forkful.duckdb)
	HTTP_PORT                   listen port (default 3000)
	ENVIRONMENT                 "production" requires JWT_SECRET
	JWT_SECRET                  token signing secret, 32+ characters
	TOP_RESTAURANTS_LIMIT       default size of /restaurants/top (10)
	CATEGORY_REFRESH_SCHEDULE   cron spec, empty disables (default "@every 5m")
	LOG_LEVEL, LOG_FORMAT       zerolog level and json|console

SIGINT and SIGTERM stop the tree; in-flight requests get 10 seconds to finish.

Example:

	DUCKDB_PATH=./forkful.duckdb SEED_MOCK_DATA=true LOG_FORMAT=console ./server
*/
package main
