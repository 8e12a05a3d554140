// Package store is the injected metadata sink of the artfield core:
// an explicit Store interface over batch records, replacing any ambient
// gallery state. The core hands a finished batch to whatever Store the
// caller wires in; FileStore is the JSON-on-disk implementation used by
// the automation CLI.
package store
