// SPDX-FileCopyrightText: Seohyun Park <seohyun@nalssi.app>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides small helpers shared by the package tests.
package testhelper

import "net/http"

// MockRoundTripper satisfies http.RoundTripper and delegates to Fn, allowing
// tests to serve canned API responses without a network.
type MockRoundTripper struct {
	Fn func(req *http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}
