// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package supervisor runs the service's long-lived goroutines under a suture v4
supervision tree.

	RootSupervisor ("skillbridge")
	├── CoreSupervisor ("core-layer")
	│   └── StatsReporter (if STATS_REPORT_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPService

Crashed services are restarted with suture's failure decay and backoff.
Canceling the context passed to Serve stops every layer; services that
outlive ShutdownTimeout show up in UnstoppedServiceReport.

Supervisor events are logged through sutureslog. Pass an *slog.Logger
bridged onto zerolog so they share the process log stream:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
