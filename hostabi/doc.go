// Package hostabi defines the contract between the scorer ABI and the
// managed host runtime that owns the string objects.
//
// The host is an external collaborator consumed through small interfaces:
// Runtime for the global execution right and error state, Object for
// reference counting, and ByteSeq/TextSeq for the two supported string
// representations. Marshaling borrows host buffers zero-copy into
// encstr.String views; StringGuard scopes a borrow's lifetime; Translate
// converts a caught native failure into the host's error state at the
// exact point control crosses back into host territory.
//
// LocalRuntime and friends are an in-process reference host used by tests
// and the CLI.
package hostabi
