// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package api provides the HTTP surface of the matching service.

Routes:

  - POST /match: score a mentor pool for one learner. The body is a
    matching.MatchRequest and a 200 response is the raw matching.MatchResponse.
  - GET /health: liveness. Never touches the scoring path.
  - GET /stats: engine counters snapshot.
  - GET /metrics: Prometheus exposition.
  - GET /swagger/*: Swagger UI backed by the document registered by package docs.

Errors share one body shape:

	{"error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}, "request_id": "..."}}

Status mapping:

  - 400 VALIDATION_ERROR: malformed JSON or a field that fails validation
  - 413 PAYLOAD_TOO_LARGE: body exceeds server.max_body_bytes
  - 429 TOO_MANY_REQUESTS: per-IP rate limit (go-chi/httprate)
  - 499 REQUEST_CANCELED: the client went away before matching finished
  - 503 MATCH_TIMEOUT: the engine exceeded its time budget
  - 500 INTERNAL_ERROR: anything else

Middleware order is request ID, real IP, panic recovery, CORS, then the
per-group rate limit, Prometheus and access log middleware.
*/
package api
