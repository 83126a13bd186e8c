// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards mutating endpoints with a shared API key.

# API Key Gate

Wrap a handler so it only runs when the x-api-key header matches the
configured key exactly:

	mux.HandleFunc("POST /round-score", auth.RequireAPIKey(cfg.APIKey, handler))

A missing or mismatched key gets 401 {"error":"Unauthorized"} and the wrapped
handler never runs.

# Limitations

This is a single static secret compared for equality. There is no rotation,
no per-user scoping and no rate limiting. Any holder of the key can submit
scores for any userId. It keeps random traffic out of an internal tool; it is
not a security boundary for multi-tenant use.

The comparison goes through crypto/subtle.ConstantTimeCompare. It is still
exact string equality, but its timing no longer depends on how many
leading bytes match, which a plain == comparison would leak. That is the
only hardening; the limitations above are unchanged.
*/
package auth
