// Package plugins contains helpers shared by KCL plugin implementations.
package plugins
