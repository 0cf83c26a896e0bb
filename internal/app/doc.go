// Package app provides application initialization and lifecycle management
// for the timetable conversion service. It wires configuration, logging,
// services and the HTTP router together at startup and handles graceful
// shutdown.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize structured logging
//	3. Initialize the upload manager and conversion services
//	4. Set up HTTP handlers and middleware
//	5. Configure and start the HTTP server
//
// # Usage
//
// The main entry point is typically:
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// The package handles SIGINT and SIGTERM signals; active requests are
// allowed to complete within the configured shutdown timeout before the
// server exits. Initialization errors are returned to the caller so main
// controls the exit process.
package app
