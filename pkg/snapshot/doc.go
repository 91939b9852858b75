// Package snapshot captures serialized host trees and persists them.
//
// A snapshot is the deterministic HTML rendering of a mounted
// container at one point in time, content-addressed by a 64-bit hash
// of its markup. Stores persist snapshots on local disk or in S3;
// both implement the same Store interface consumed by the inspector's
// HTTP endpoints.
package snapshot
