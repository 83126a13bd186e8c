// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the round-score API server.

round-score stores the results of pronunciation practice rounds and proxies
audio to Azure Speech pronunciation assessment.

# Starting the Server

The server reads a .env file from the working directory, then environment
variables, then CLI flags:

	DATABASE_URL=postgres://... API_KEY=... AZURE_SPEECH_KEY=... AZURE_SPEECH_REGION=eastus go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -api-key secret -azure-key ... -azure-region eastus

A SQLite file works for local development:

	go run . -t sqlite -d ./scores.db ...

# Configuration

Required settings:

  - DATABASE_URL (-d): Store connection string
  - API_KEY (-api-key): Shared secret expected in X-API-Key

Optional settings:

  - AZURE_SPEECH_KEY (-azure-key) and AZURE_SPEECH_REGION (-azure-region):
    Speech resource key and region, set together. Without them
    /azure-pron-score answers 500.

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DEFAULT_LANGUAGE (-lang): Assessment locale (default: ja-JP)

# Architecture

  - handlers: HTTP request handlers (health, scores, pronunciation)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, recovery, body limits, JSON helpers
  - models: Request/response types
  - auth: API key gate
  - db: Schema creation per dialect
  - pronunciation: Assessor interface, audio decoding, WAV parsing
  - pronunciation/azure: Speech SDK backed Assessor (requires cgo)
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
