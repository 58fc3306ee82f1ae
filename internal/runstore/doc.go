// Package runstore persists a history of evaluation runs to a local SQLite
// database so results can be compared across matcher settings over time.
// Opening the store takes a file lock on a sidecar lock file, serializing
// schema setup between concurrent CLI invocations.
package runstore
