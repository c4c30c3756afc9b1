// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package alias maps Korean place names to the query strings the
// OpenWeatherMap name lookup understands.
package alias

// Resolve returns the provider query string for a Korean place name. The
// match is exact and case-sensitive; anything not in the table (including
// English city names) passes through unchanged.
func Resolve(name string) string {
	if query, ok := placeAliases[name]; ok {
		return query
	}
	return name
}

// Known reports whether the given name is listed in the alias table.
func Known(name string) bool {
	_, ok := placeAliases[name]
	return ok
}

// Ambiguous reports whether a bare district name is shared by several
// cities. Such names still resolve (to the most populous holder), but the
// UI should suggest the city-qualified form, e.g. "인천 중구".
func Ambiguous(name string) bool {
	_, ok := ambiguousDistricts[name]
	return ok
}
