// Package pathutil resolves untrusted paths against a repository root and
// allocates per-key child paths, using only string arithmetic from
// [github.com/MacroPower/pathkit/pkg/paths].
package pathutil
