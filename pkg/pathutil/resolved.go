// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

package pathutil

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MacroPower/pathkit/pkg/paths"
)

var (
	ErrNotAbsolute         = errors.New("path is not absolute")
	ErrResolvePath         = errors.New("failed to resolve path")
	ErrURLSchemeNotAllowed = errors.New("the URL scheme is not allowed")
	ErrResolvedOutsideRepo = errors.New("file resolved to outside repository root")
	ErrResolvedToRepoRoot  = errors.New("path resolved to repository root, which is not allowed")
)

// ResolvedFilePath represents a resolved file path and is intended to prevent
// unintentional use of an unverified file path. It is always either a URL or a
// normalized rooted path.
type ResolvedFilePath struct {
	path   string
	scheme string
}

// Scheme returns the URL scheme and true if the path is a remote URL,
// otherwise it returns ("", false).
func (r ResolvedFilePath) Scheme() (string, bool) {
	return r.scheme, r.scheme != ""
}

// String returns the resolved path or URL as a string.
func (r ResolvedFilePath) String() string {
	return r.path
}

// ResolvedFileOrDirectoryPath represents a resolved file or directory path
// and is intended to prevent unintentional use of an unverified path.
type ResolvedFileOrDirectoryPath string

// String returns the resolved path as a string.
func (r ResolvedFileOrDirectoryPath) String() string {
	return string(r)
}

// isURLSchemeAllowed returns true if the protocol scheme is in the list of
// allowed URL schemes.
func isURLSchemeAllowed(scheme string, allowed []string) bool {
	if scheme == "" {
		return false
	}

	for _, s := range allowed {
		if strings.EqualFold(scheme, s) {
			return true
		}
	}

	return false
}

// urlScheme returns the scheme of file if it starts with `scheme://`. The
// authority may be empty and need not be followed by a path. Single letter
// schemes are drive letters, not URLs.
func urlScheme(file string) (string, bool) {
	scheme, _, found := strings.Cut(file, "://")
	if !found || len(scheme) < 2 || !isASCIILetter(scheme[0]) {
		return "", false
	}

	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isASCIILetter(c) && (c < '0' || c > '9') && c != '+' && c != '-' && c != '.' {
			return "", false
		}
	}

	return scheme, true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// We do not provide the path in the error message, because it will be
// returned to the user and could be used for information gathering.
// Instead, we log the concrete error details.
func resolveFailure(path string, err error) error {
	slog.Error("failed to resolve path", slog.String("path", path), slog.Any("err", err))

	return fmt.Errorf("%w: %w", ErrResolvePath, err)
}

// ResolveFileOrDirectoryPath is like [ResolveFilePathOrURL], but the result
// may be the repository root itself and URLs are not accepted.
func ResolveFileOrDirectoryPath(
	currentPath, repoRoot, dir string, p paths.Platform,
) (ResolvedFileOrDirectoryPath, error) {
	path, err := resolveFileOrDirectory(currentPath, repoRoot, dir, p, true)
	if err != nil {
		return "", err
	}

	return ResolvedFileOrDirectoryPath(path), nil
}

// ResolveFilePathOrURL will inspect and resolve given file, and make sure
// that its final path is within the boundaries of the path specified in
// repoRoot. No filesystem access takes place; symbolic links are not
// followed.
//
// currentPath is the path we're operating in, and repoRoot is the root of the
// repository. Both must be rooted paths.
//
// file is the path to a file, relative to currentPath. If file is rooted
// (e.g. has a leading slash), it is treated as relative to repoRoot. file can
// also be a URI such as `https://host/values.yaml`, in which case its scheme
// must be included in allowedURLSchemes.
//
// The containment check is made with [paths.Platform.IsEqualOrParent], so it
// honors the case sensitivity of p.
func ResolveFilePathOrURL(
	currentPath, repoRoot, file string, allowedURLSchemes []string, p paths.Platform,
) (ResolvedFilePath, error) {
	if scheme, ok := urlScheme(file); ok {
		if isURLSchemeAllowed(scheme, allowedURLSchemes) {
			return ResolvedFilePath{path: file, scheme: scheme}, nil
		}

		return ResolvedFilePath{}, fmt.Errorf("%w: %s", ErrURLSchemeNotAllowed, scheme)
	}

	path, err := resolveFileOrDirectory(currentPath, repoRoot, file, p, false)
	if err != nil {
		return ResolvedFilePath{}, err
	}

	return ResolvedFilePath{path: path}, nil
}

func resolveFileOrDirectory(
	currentPath, repoRoot, fileOrDirectory string, p paths.Platform, allowResolveToRoot bool,
) (string, error) {
	for _, base := range []string{repoRoot, currentPath} {
		if paths.Root(base) == "" {
			return "", resolveFailure(base, fmt.Errorf("%w: %q", ErrNotAbsolute, base))
		}
	}

	root := paths.Normalize(repoRoot)

	// Rooted paths are relative to the repository root, everything else is
	// relative to the current path.
	var path string
	if rel := paths.Root(fileOrDirectory); rel != "" {
		path = paths.Join(repoRoot, fileOrDirectory[len(rel):])
	} else {
		path = paths.Join(currentPath, fileOrDirectory)
	}

	path = trimTrailingSep(paths.Normalize(path))

	if !p.IsEqualOrParent(path, root) {
		return "", fmt.Errorf("%w: %s", ErrResolvedOutsideRepo, fileOrDirectory)
	}

	if p.IsEqualOrParent(root, path) && !allowResolveToRoot {
		return "", fmt.Errorf("%w: %s", ErrResolvedToRepoRoot, path)
	}

	return path, nil
}

// trimTrailingSep removes a trailing `/` unless it is part of the root.
func trimTrailingSep(path string) string {
	if len(path) > len(paths.Root(path)) {
		return strings.TrimSuffix(path, "/")
	}

	return path
}
