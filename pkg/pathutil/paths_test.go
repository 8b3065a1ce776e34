// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

//nolint:testpackage
package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURLSchemeAllowed(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		scheme  string
		allowed []string
		want    bool
	}{
		"allowed":          {scheme: "https", allowed: []string{"http", "https"}, want: true},
		"case insensitive": {scheme: "HTTPS", allowed: []string{"https"}, want: true},
		"not allowed":      {scheme: "file", allowed: []string{"http", "https"}, want: false},
		"empty scheme":     {scheme: "", allowed: []string{""}, want: false},
		"nothing allowed":  {scheme: "https", allowed: nil, want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, isURLSchemeAllowed(tc.scheme, tc.allowed))
		})
	}
}

func TestTrimTrailingSep(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want string
	}{
		"dir":        {path: "/foo/", want: "/foo"},
		"no slash":   {path: "/foo", want: "/foo"},
		"posix root": {path: "/", want: "/"},
		"drive root": {path: "C:/", want: "C:/"},
		"unc root":   {path: "//host/share/", want: "//host/share/"},
		"unc child":  {path: "//host/share/x/", want: "//host/share/x"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, trimTrailingSep(tc.path))
		})
	}
}
