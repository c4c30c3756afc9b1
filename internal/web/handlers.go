// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/seohyun-park/nalssi/internal/alias"
	"github.com/seohyun-park/nalssi/internal/geoloc"
	"github.com/seohyun-park/nalssi/internal/logger"
	"github.com/seohyun-park/nalssi/internal/weather"
)

// apiError is the uniform failure payload: a localized message plus an
// optional localized hint at an alternative action.
type apiError struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

type pageData struct {
	Title string
	Mode  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title: s.localizer.Get("Weather lookup"),
		Mode:  s.sessions.Mode(r).String(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("failed to render page", logger.Err(err))
	}
}

// handleWeather serves both lookup shapes: ?q=<name> for a typed search
// and ?lat=&lon= for coordinate lookups (GPS fixes come in through their
// own endpoint).
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if query := r.URL.Query().Get("q"); query != "" {
		s.sessions.Apply(w, r, geoloc.ActionTypedSearch)
		snapshot, err := s.service.SearchByName(r.Context(), query)
		if err != nil {
			s.writeLookupError(w, err, query)
			return
		}
		view := s.presenter.Snapshot(snapshot)
		if alias.Ambiguous(query) {
			view.Hint = s.localizer.Get(`Several districts share this name; qualify it with the city, e.g. "서울 중구".`)
		}
		s.writeJSON(w, http.StatusOK, view)
		return
	}

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		s.writeError(w, http.StatusBadRequest, "Coordinates are out of range.", "")
		return
	}

	location := geoloc.Location{
		Coordinate: geoloc.Coordinate{Lat: lat, Lon: lon},
		Source:     geoloc.SourceTypedName,
	}
	snapshot, err := s.service.WeatherAt(r.Context(), location)
	if err != nil {
		s.writeLookupError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.Snapshot(snapshot))
}

// handleIPLocate resolves the visitor via the IP fallback chain and
// immediately fetches weather for the result.
func (s *Server) handleIPLocate(w http.ResponseWriter, r *http.Request) {
	s.sessions.Apply(w, r, geoloc.ActionSelectIP)

	location, err := s.service.LocateByIP(r.Context())
	if err != nil {
		s.writeLookupError(w, err, "")
		return
	}
	snapshot, err := s.service.WeatherAt(r.Context(), location)
	if err != nil {
		s.writeLookupError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.Snapshot(snapshot))
}

// handleGPS is the sink for the browser's one-shot position message. A
// delivered fix is wired straight into a weather fetch so the visitor
// never has to press a second button.
func (s *Server) handleGPS(w http.ResponseWriter, r *http.Request) {
	s.sessions.Apply(w, r, geoloc.ActionSelectGPS)

	var fix geoloc.Fix
	if err := json.NewDecoder(r.Body).Decode(&fix); err != nil {
		s.writeError(w, http.StatusBadRequest, "An unknown error occurred while reading your location.", "")
		return
	}
	location, err := fix.Location()
	if err != nil {
		if errors.Is(err, geoloc.ErrInvalidCoordinate) {
			s.writeError(w, http.StatusBadRequest, "Coordinates are out of range.", "")
			return
		}
		s.writeError(w, http.StatusBadRequest, "An unknown error occurred while reading your location.", "")
		return
	}

	snapshot, err := s.service.WeatherAt(r.Context(), location)
	if err != nil {
		s.writeLookupError(w, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.Snapshot(snapshot))
}

// handleGPSError translates a W3C geolocation error code into the
// localized remediation message the page displays.
func (s *Server) handleGPSError(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code int `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		payload.Code = 0
	}
	kind := geoloc.ClassifyGPSError(payload.Code)
	s.writeJSON(w, http.StatusOK, map[string]string{
		"kind":    kind.String(),
		"message": s.localizer.Get(kind.MessageID()),
	})
}

// handleMode runs an explicit mode transition without a lookup, keeping
// the button state consistent across reloads.
func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	var action geoloc.Action
	switch r.FormValue("action") {
	case "gps":
		action = geoloc.ActionSelectGPS
	case "ip":
		action = geoloc.ActionSelectIP
	case "typed":
		action = geoloc.ActionTypedSearch
	default:
		s.writeError(w, http.StatusBadRequest, "An unknown error occurred while reading your location.", "")
		return
	}
	mode := s.sessions.Apply(w, r, action)
	s.writeJSON(w, http.StatusOK, map[string]string{"mode": mode.String()})
}

// writeLookupError maps the service error kinds to status codes and
// localized messages, including the qualified-district hint for
// ambiguous searches.
func (s *Server) writeLookupError(w http.ResponseWriter, err error, query string) {
	switch {
	case errors.Is(err, weather.ErrLocationNotFound):
		hint := ""
		if alias.Ambiguous(query) {
			hint = s.localizer.Get(`Several districts share this name; qualify it with the city, e.g. "서울 중구".`)
		}
		s.writeError(w, http.StatusNotFound, "City not found. Check the spelling or try the English name.", hint)
	case errors.Is(err, geoloc.ErrIPLocationUnavailable):
		s.writeError(w, http.StatusBadGateway, "Could not determine your location. Try searching by city name instead.", "")
	case errors.Is(err, geoloc.ErrInvalidCoordinate):
		s.writeError(w, http.StatusBadRequest, "Coordinates are out of range.", "")
	default:
		s.logger.Error("weather lookup failed", logger.Err(err))
		s.writeError(w, http.StatusBadGateway, "Weather data is currently unavailable. Please try again later.", "")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msgID, hint string) {
	s.writeJSON(w, status, apiError{Error: s.localizer.Get(msgID), Hint: hint})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode JSON response", logger.Err(err))
	}
}
