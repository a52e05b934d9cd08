//go:build unix

package daemon

import "net/http"

func (d *Daemon) setupRoutes(mux *http.ServeMux) {
	// Health endpoint
	mux.HandleFunc("/health", d.handleHealth)

	// Discovery endpoint for the launcher integration
	mux.HandleFunc("/api/projects", d.handleProjects)
}
