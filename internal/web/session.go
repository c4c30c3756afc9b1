// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/seohyun-park/nalssi/internal/geoloc"
)

const sessionCookie = "nalssi_sid"

// SessionStore keeps the per-visitor acquisition mode. The state is
// in-memory and cookie-scoped; losing it on restart only resets button
// highlights.
type SessionStore struct {
	mu    sync.Mutex
	modes map[string]geoloc.Mode
}

func NewSessionStore() *SessionStore {
	return &SessionStore{modes: make(map[string]geoloc.Mode)}
}

// Mode returns the visitor's current acquisition mode. An unknown or
// absent session reads as ModeNone.
func (s *SessionStore) Mode(r *http.Request) geoloc.Mode {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return geoloc.ModeNone
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modes[cookie.Value]
}

// Apply runs one mode transition for the visitor's session and returns
// the resulting mode. The store's lock makes it the single writer for
// all transitions.
func (s *SessionStore) Apply(w http.ResponseWriter, r *http.Request, action geoloc.Action) geoloc.Mode {
	id := s.sessionID(w, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.modes[id].Next(action)
	s.modes[id] = next
	return next
}

func (s *SessionStore) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	id := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
