// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres)
  - APIKey: Shared secret checked against the x-api-key header (required)
  - AzureSpeechKey: Azure Speech subscription key (required)
  - AzureSpeechRegion: Azure Speech region, e.g. japaneast (required)
  - DefaultLanguage: Recognition locale when a request has none (default: ja-JP)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-lang          Default recognition locale
	-api-key       Shared API key
	-azure-key     Azure Speech subscription key
	-azure-region  Azure Speech region

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	DEFAULT_LANGUAGE    → -lang
	API_KEY             → -api-key
	AZURE_SPEECH_KEY    → -azure-key
	AZURE_SPEECH_REGION → -azure-region

CLI flags take precedence over environment variables. LoadDotEnv reads a
.env file into the environment first; variables that are already set win.

# Validation

ParseFlags returns an error if required values are missing, so the server
refuses to start without a database, an API key, and Azure credentials.

# Example

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
*/
package cliparse
