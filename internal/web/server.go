// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the correction engine over HTTP.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"namecorrect/internal/formatters"
	"namecorrect/internal/match"
	"namecorrect/internal/matcher"
	"namecorrect/internal/observability"
	"namecorrect/internal/version"

	// Import formatters to register them
	_ "namecorrect/internal/formatters/csv"
	_ "namecorrect/internal/formatters/json"
	_ "namecorrect/internal/formatters/text"
	_ "namecorrect/internal/formatters/yaml"
)

// maxRequestBody bounds the accepted request size for POST endpoints.
const maxRequestBody = 1 << 16

// WebServer represents the web server instance
type WebServer struct {
	port     string
	matcher  *matcher.Matcher
	observer *observability.Observer
	server   *http.Server
	mux      *http.ServeMux
}

// CorrectResponse wraps a correction result for the HTTP API
type CorrectResponse struct {
	Success bool          `json:"success"`
	Result  *match.Result `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// NewWebServer creates a new web server instance
func NewWebServer(port string, m *matcher.Matcher, observer *observability.Observer) *WebServer {
	ws := &WebServer{
		port:     port,
		matcher:  m,
		observer: observer,
		mux:      http.NewServeMux(),
	}
	ws.setupRoutes()
	return ws
}

// Start starts the web server. If the requested port is busy it tries the
// following nine ports before giving up.
func (ws *WebServer) Start() error {
	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 || ws.port == "8080" {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		// Test if port is available first
		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		ws.server = ws.createSecureServer(currentPort)

		fmt.Printf("Name correction API started on port %s\n", currentPort)
		fmt.Printf("Local: http://localhost:%s\n", currentPort)

		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089\n"+
		"Last error: %v\n"+
		"Try a specific port with --port <number>", lastError)
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

// Handler returns the route handler, for tests and embedding.
func (ws *WebServer) Handler() http.Handler {
	return ws.mux
}

// setupRoutes configures all HTTP route handlers
func (ws *WebServer) setupRoutes() {
	ws.mux.HandleFunc("/correct", ws.handleCorrect)
	ws.mux.HandleFunc("/health", ws.handleHealth)
	ws.mux.HandleFunc("/version", ws.handleVersion)
	ws.mux.HandleFunc("/names/", ws.handleNames)
	ws.mux.HandleFunc("/export", ws.handleExport)
	ws.mux.HandleFunc("/formats", ws.handleFormats)
}

// createSecureServer creates an HTTP server with security timeouts
func (ws *WebServer) createSecureServer(port string) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: ws.mux,
		// Timeout for reading request headers (prevents slow header attacks)
		ReadHeaderTimeout: 15 * time.Second,
		// Timeout for reading entire request
		ReadTimeout: 30 * time.Second,
		// Timeout for writing response
		WriteTimeout: 30 * time.Second,
		// Timeout for idle connections
		IdleTimeout: 60 * time.Second,
	}
}

// handleCorrect runs a correction for the posted query
func (ws *WebServer) handleCorrect(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	done := ws.observer.StartTiming("web", "correct")

	var query match.Query
	decoder := json.NewDecoder(http.MaxBytesReader(responseWriter, request.Body, maxRequestBody))
	if err := decoder.Decode(&query); err != nil {
		done(false, 0, nil)
		ws.sendError(responseWriter, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(query.FirstName) == "" && strings.TrimSpace(query.LastName) == "" {
		done(false, 0, nil)
		ws.sendError(responseWriter, "At least one of first_name or last_name is required", http.StatusBadRequest)
		return
	}

	result := ws.matcher.Correct(query)
	done(true, len(result.FirstNameMatches)+len(result.LastNameMatches), nil)

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(CorrectResponse{
		Success: true,
		Result:  &result,
	})
}

// handleHealth reports service liveness and build information
func (ws *WebServer) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "namecorrect-api",
		"version":   versionInfo["version"],
		"build_info": map[string]interface{}{
			"version":    versionInfo["version"],
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(healthData)
}

// handleVersion reports the full version map
func (ws *WebServer) handleVersion(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(version.Full())
}

// handleNames serves stored name details at /names/{type}/{name}
func (ws *WebServer) handleNames(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(request.URL.Path, "/names/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		ws.sendError(responseWriter, "Expected path /names/{first_name|last_name}/{name}", http.StatusBadRequest)
		return
	}

	nameType := match.NameType(parts[0])
	if nameType != match.FirstName && nameType != match.LastName {
		ws.sendError(responseWriter, "Unknown name type: "+parts[0], http.StatusBadRequest)
		return
	}

	details, ok := ws.matcher.NameDetails(nameType, parts[1])
	if !ok {
		ws.sendError(responseWriter, "Name not found: "+parts[1], http.StatusNotFound)
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(details)
}

// handleExport runs a correction and returns it as a downloadable file in
// the requested format
func (ws *WebServer) handleExport(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload struct {
		match.Query
		Format  string `json:"format"`
		Verbose bool   `json:"verbose"`
	}
	decoder := json.NewDecoder(http.MaxBytesReader(responseWriter, request.Body, maxRequestBody))
	if err := decoder.Decode(&payload); err != nil {
		ws.sendError(responseWriter, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Format == "" {
		payload.Format = "json"
	}

	result := ws.matcher.Correct(payload.Query)
	content, mimeType, filename, err := formatters.ExportForWeb(payload.Format, result, formatters.FormatterOptions{
		Verbose: payload.Verbose,
		NoColor: true,
	})
	if err != nil {
		ws.sendError(responseWriter, err.Error(), http.StatusBadRequest)
		return
	}

	responseWriter.Header().Set("Content-Type", mimeType)
	responseWriter.Header().Set("Content-Disposition", "attachment; filename="+filename)
	responseWriter.WriteHeader(http.StatusOK)
	fmt.Fprint(responseWriter, content)
}

// handleFormats lists the available export formats
func (ws *WebServer) handleFormats(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(formatters.List())
}

// sendError sends a JSON error response with a specific HTTP status code
func (ws *WebServer) sendError(responseWriter http.ResponseWriter, message string, statusCode int) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(statusCode)
	json.NewEncoder(responseWriter).Encode(CorrectResponse{
		Success: false,
		Error:   message,
	})
}
