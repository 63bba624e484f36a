// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, request tracing, access logging,
// metrics and bearer-token authentication are handled in this package before
// requests are delegated to the service layer. The authenticated user ID is
// resolved once by the auth middleware and handed to services as an explicit
// argument.
package http
