// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Matchctl runs a single match request from the command line.

The request is read from a YAML or JSON file, or from stdin, and scored by
the in-process engine. With -remote, the request goes to a running matching
service first and falls back to the local engine if that service is down,
rate limited or times out.

	matchctl -f request.yaml
	matchctl -remote http://localhost:8001 -limit 3 < request.json

The JSON response is written to stdout. The path that served it (remote or
local) is written to stderr. Exit status is 2 for unreadable or invalid
requests and 1 for other failures.

A request file:

	learner:
	  id: 6f1c2f8e-3f0a-4c59-9c55-0c1b3d1c2a11
	  skills: [python]
	  learning_goals: [go, kubernetes]
	  location: Lagos
	  availability: 10
	  experience_level: beginner
	mentors:
	  - id: 0e7d7a4c-5d1f-4c7e-8f2a-9b1c3d4e5f60
	    expertise: [go, kubernetes]
	    location: lagos
	    availability: 8
	    experience_years: 2
	    rating: 4.8
	limit: 5
*/
package main
