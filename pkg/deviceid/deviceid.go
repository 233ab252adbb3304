// Package deviceid gives a client a stable per-machine token that survives
// restarts, used to prove "I am the device that registered this member" on a
// later removal request. It is the Go counterpart of the web client's
// localStorage token.
package deviceid

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	appDir   = "team-signup"
	fileName = "device-id"
)

// GetOrCreate returns the persisted device token, creating and storing a new
// one on first call. If durable storage is unavailable it falls back to a
// fresh token per call rather than failing.
func GetOrCreate() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return uuid.NewString()
	}
	return getOrCreateIn(filepath.Join(base, appDir))
}

func getOrCreateIn(dir string) string {
	path := filepath.Join(dir, fileName)

	if data, err := os.ReadFile(path); err == nil {
		token := strings.TrimSpace(string(data))
		if _, err := uuid.Parse(token); err == nil {
			return token
		}
	}

	token := uuid.NewString()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return token
	}
	// Best effort; an unwritable disk still yields a usable one-off token.
	_ = os.WriteFile(path, []byte(token+"\n"), 0o600)
	return token
}
