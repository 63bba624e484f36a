// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405, a request whose method is not registered for
// the matched route is answered by notFound, hiding the existence of the
// route from callers that use an unsupported method. If the method IS
// registered for a route whose pattern equals the request path, the request
// is forwarded to the router's normal pipeline.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded during this check.
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
