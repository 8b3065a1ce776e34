// Package batch evaluates many path operations from a single YAML or JSON
// document.
//
// A request looks like:
//
//	platform: windows
//	operations:
//	  - id: a
//	    op: normalize
//	    args: ['C:\a\..\b']
//	  - op: isEqualOrParent
//	    args: ['c:\repo\x', 'C:\Repo']
//
// Operation names may be written in any case style and are resolved with
// [CanonicalOp].
package batch
