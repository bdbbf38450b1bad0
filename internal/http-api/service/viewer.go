package service

import (
	"time"

	"locallibrary/internal/http-api/models"
)

// Viewer is who is asking, what they may do and which day it is for them.
// Every catalog operation takes one explicitly instead of reading request state.
type Viewer struct {
	UserID       string
	Capabilities map[string]bool
	Today        time.Time
}

// Anonymous returns a viewer with no identity.
func Anonymous(now time.Time) Viewer {
	return Viewer{Today: models.DateOf(now)}
}

// NewViewer builds an authenticated viewer from a user id and capability codenames.
func NewViewer(userID string, capabilities []string, now time.Time) Viewer {
	caps := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		caps[c] = true
	}
	return Viewer{UserID: userID, Capabilities: caps, Today: models.DateOf(now)}
}

func (v Viewer) IsAuthenticated() bool {
	return v.UserID != ""
}

func (v Viewer) Has(capability string) bool {
	return v.Capabilities[capability]
}

// require fails with ErrAuthenticationRequired for anonymous viewers and
// ErrForbidden for authenticated viewers lacking the capability.
func (v Viewer) require(capability string) error {
	if !v.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	if !v.Has(capability) {
		return ErrForbidden
	}
	return nil
}
