// Package path provides a KCL plugin, imported as `kcl_plugin.path`, that
// exposes the platform-aware path functions of
// [github.com/MacroPower/pathkit/pkg/paths].
package path
