//go:build unix

package daemon

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jetscout/jetscout/internal/discover"
)

func (d *Daemon) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(d.startTime).Seconds(),
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// handleProjects runs one fresh discovery pass per request and returns the
// envelope. The error variant maps to HTTP 500, mirroring the non-zero exit
// status of the one-shot command.
func (d *Daemon) handleProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()
	logger := d.logger.With(zap.String("request_id", requestID))
	start := time.Now()

	env := discover.Run(logger)

	status := http.StatusOK
	if env.Kind == discover.KindError {
		status = http.StatusInternalServerError
		logger.Error("discovery request failed", zap.String("message", env.Message))
	} else {
		logger.Debug("discovery request served",
			zap.Int("products", len(env.Projects)),
			zap.Duration("elapsed", time.Since(start)))
	}
	writeJSON(w, env, status)
}

// Helper functions

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	buf, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, map[string]string{"error": message}, status)
}
