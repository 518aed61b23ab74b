// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package matchclient calls a remote matching service over HTTP.

Client wraps POST /match and GET /health with a client-side rate limiter
(golang.org/x/time/rate) and a circuit breaker (sony/gobreaker). Remote 4xx
responses are returned as *StatusError and do not count against the breaker.

FallbackMatcher tries the remote service first and falls back to the
in-process engine when the remote path fails:

	client, _ := matchclient.NewClient(&cfg.Client)
	fm := matchclient.NewFallbackMatcher(client, engine)
	resp, source, err := fm.Match(ctx, req)

source is SourceRemote or SourceLocal. Validation failures reported by the
remote service are returned as-is since the local engine would reject the
same request.
*/
package matchclient
