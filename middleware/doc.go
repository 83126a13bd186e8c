// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID when the
caller sends one, otherwise a UUID is generated; it is echoed back.

# Body Limits

	mux.HandleFunc("POST /round-score", middleware.LimitBody(200_000, handler))

Bodies over the limit get 413 with a message such as
"request body exceeds 200 kB".

# CORS and Recovery

	server := http.Server{
		Handler: middleware.Recover(middleware.CORS(mux)),
	}

CORS allows any origin with the Content-Type and X-API-Key headers.
Recover converts a handler panic into a 500 FailureResponse.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
	middleware.FailureResponse(w, http.StatusInternalServerError, err)

Parse JSON request bodies (an empty body is not an error):

	var req models.PronunciationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in logs.
*/
package middleware
