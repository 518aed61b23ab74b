// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package main is the SkillBridge matching service.

It serves the stateless mentor-learner matching engine over HTTP:

	POST /match    score a learner against a candidate mentor pool
	GET  /health   liveness and build version
	GET  /stats    engine counters
	GET  /metrics  Prometheus exposition
	GET  /swagger/ Swagger UI, with the OpenAPI document at /swagger/doc.json

Processes run under a suture supervision tree:

	RootSupervisor ("skillbridge")
	├── CoreSupervisor ("core-layer")
	│   └── StatsReporter (STATS_REPORT_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPService

Configuration comes from koanf: struct defaults, then an optional YAML file
(CONFIG_PATH), then environment variables. Common settings:

	PORT=8001
	LOG_LEVEL=info
	LOG_FORMAT=json
	MATCH_DEFAULT_LIMIT=5
	MATCH_MAX_LIMIT=20
	MATCH_TIMEOUT=5s
	CORS_ORIGINS=https://app.example.com
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

SIGINT or SIGTERM cancels the tree; the HTTP server drains in-flight
requests for up to SERVER_SHUTDOWN_TIMEOUT.

Build with a version:

	go build -ldflags "-X main.version=1.2.0" ./cmd/server
*/
package main
