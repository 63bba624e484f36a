// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: binding the listener, serving requests,
// reacting to stop signals, and draining in-flight requests on shutdown.
package server
