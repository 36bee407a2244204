package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"labforge/internal/logging"
	"labforge/internal/provisioning"
)

// provisionRequest is the JSON body of a provisioning request
type provisionRequest struct {
	SessionID string `json:"sessionId"`
	OSType    string `json:"osType"`
	UserID    string `json:"userId"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleProvision provisions one lab VM and answers with the setup
// transcript. Validation failures are 4xx with no provider calls;
// anything the provider throws becomes a 500 envelope.
func (s *Server) handleProvision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SessionID == "" || req.OSType == "" || req.UserID == "" {
		http.Error(w, "Missing required fields: sessionId, osType, userId", http.StatusBadRequest)
		return
	}

	name := provisioning.InstanceNameFor(req.OSType, req.SessionID)

	logging.Logger().Info("provisioning lab VM",
		zap.String("session_id", req.SessionID),
		zap.String("os_type", req.OSType),
		zap.String("user_id", req.UserID),
		zap.String("instance", name))

	spec := provisioning.InstanceSpec{
		Name:         name,
		MachineType:  provisioning.DefaultMachineType,
		DiskSizeGb:   provisioning.DefaultDiskSizeGb,
		ImageProject: provisioning.ImageProjectFor(req.OSType),
		ImageFamily:  provisioning.ImageFamilyFor(req.OSType),
		Spot:         true,
		Tags: []string{
			"guacamole-lab",
			"os-" + tagValue(req.OSType),
			"user-" + tagValue(req.UserID),
		},
		Metadata: map[string]string{
			"session-id":     req.SessionID,
			"startup-script": provisioning.StartupScriptFor(req.OSType),
		},
	}
	if s.sshPublicKey != "" {
		spec.Metadata["ssh-keys"] = fmt.Sprintf("%s:%s", s.sshUser, s.sshPublicKey)
	}

	info, err := s.provisioner.Create(r.Context(), spec)
	if err != nil {
		logging.Logger().Error("provisioning failed",
			zap.String("session_id", req.SessionID),
			zap.String("instance", name),
			zap.Error(err))

		msg := err.Error()
		if msg == "" {
			msg = "Unknown error occurred"
		}
		writeErrorJSON(w, http.StatusInternalServerError, msg)
		return
	}

	logging.Logger().Info("lab VM ready",
		zap.String("session_id", req.SessionID),
		zap.String("instance", info.Name),
		zap.String("ip", info.IP))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, setupTranscript)
}

// tagValue lowercases and hyphenates a value so it is usable as a
// compute network tag.
func tagValue(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

func writeErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Success: false, Error: msg})
}
