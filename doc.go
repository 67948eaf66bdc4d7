// Package scorerruntime is a cross-language ABI layer that lets a managed
// host runtime invoke native, width-polymorphic string-similarity scorers
// without knowing the scorer's implementation type or the string's
// internal character width.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	scorer-runtime/      Root package documentation
//	├── encstr/          Encoded string views and the width dispatcher
//	├── hostabi/         Host runtime contract: marshaling, guards, error translation
//	├── scorer/          Type-erased scorer context lifecycle (Init/CallF64/Dtor)
//	├── metrics/         Similarity algorithm families (Jaro, Jaro-Winkler, Indel)
//	├── wasmhost/        wazero-backed host buffers in guest linear memory
//	├── errors/          Structured error types for the failure taxonomy
//	└── testbed/         End-to-end scenarios across the whole boundary
//
// # Quick Start
//
// Score a candidate against a pattern through the full ABI path:
//
//	host := hostabi.NewLocalRuntime()
//	obj := hostabi.NewLocalBytes([]byte("abc"))
//
//	if err := hostabi.ValidateString(obj, "pattern must be a string"); err != nil {
//	    log.Fatal(err)
//	}
//	guard := hostabi.Guard(hostabi.ConvertString(obj), obj)
//	defer guard.Release()
//
//	f := scorer.New(host, metrics.JaroWinkler(0.1))
//	if !f.Init([]encstr.String{guard.Str}) {
//	    // translated failure: inspect host.Err()
//	}
//	defer f.Dtor()
//
//	cand := encstr.Text("abd")
//	var score float64
//	f.CallF64(&cand, 0.0, &score)
//
// # Width Dispatch
//
// A string buffer is described by a width tag (8/16/32/64-bit code
// units), a raw pointer and a unit count. encstr.Visit resolves the tag
// exactly once, outside any scoring loop, and hands strongly typed unit
// slices to the operation; algorithms are generic over both pattern and
// candidate widths, so mixed-width comparisons compile to static
// specializations.
//
// # Error Translation
//
// Failures never unwind across the boundary. Each entry point catches
// returned errors and panics, reacquires the host's global execution
// right, installs the matching host error category (memory, type, value,
// I/O, index, overflow, arithmetic, runtime) and reports false. A
// pending host error is never overwritten.
package scorerruntime
