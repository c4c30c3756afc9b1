// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

package geoloc

// Mode is the user's currently selected location acquisition method. A
// single enum keeps illegal button combinations unrepresentable.
type Mode int

const (
	ModeNone Mode = iota
	ModeGPS
	ModeIP
	ModeTypedName
)

// Action is a user interaction that may change the acquisition mode.
type Action int

const (
	// ActionSelectGPS selects the GPS mode button.
	ActionSelectGPS Action = iota
	// ActionSelectIP selects the IP mode button.
	ActionSelectIP
	// ActionTypedSearch submits a typed city name.
	ActionTypedSearch
)

// Next returns the mode after the given user action. Selecting GPS clears
// IP and vice versa; a typed-name search always resets to None.
func (m Mode) Next(a Action) Mode {
	switch a {
	case ActionSelectGPS:
		return ModeGPS
	case ActionSelectIP:
		return ModeIP
	case ActionTypedSearch:
		return ModeNone
	}
	return m
}

func (m Mode) String() string {
	switch m {
	case ModeGPS:
		return "gps"
	case ModeIP:
		return "ip"
	case ModeTypedName:
		return "typed-name"
	}
	return "none"
}
