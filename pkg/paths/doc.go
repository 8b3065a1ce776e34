// Package paths provides pure string arithmetic for file and URL paths.
//
// It understands four kinds of path roots: POSIX (`/`), Windows drive letters
// (`C:\` and the drive-relative `C:`), UNC shares (`\\host\share\`) and URIs
// (`scheme://authority/`). Paths are normalized, joined, compared and
// decomposed without ever touching the filesystem, and every decision that
// depends on the operating system is driven by an explicit [Platform] value
// rather than the process environment.
package paths
