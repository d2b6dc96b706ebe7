// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package supervisor runs Cadence's long-lived services under suture v4.

Crashed services are restarted with suture's backoff; a service returning
suture.ErrDoNotRestart is removed instead. Supervisor events go through
sutureslog into the zerolog-backed slog handler from the logging package.

Usage:

	slogger := logging.NewSlogLogger(logging.WithComponent("supervisor"))
	tree := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := tree.Serve(ctx)
*/
package supervisor
