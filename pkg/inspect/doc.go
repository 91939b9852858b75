// Package inspect exposes a mounted runtime over HTTP for debugging:
// the live instance tree as JSON, the serialized host markup, a
// websocket feed of host mutations, Prometheus metrics, and snapshot
// capture/retrieval backed by a snapshot.Store.
package inspect
