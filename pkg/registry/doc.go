// Package registry holds the catalog of element descriptors, keyed by (type, id).
//
// A Registry is an explicit handle: content packages register into it at
// process start and characters are built from it. There is no global registry.
package registry
