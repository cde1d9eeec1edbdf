// Package seqkit provides lazy, single-pass sequences built on the cursor.Cursor protocol.
//
// # Summary
//
// A sequence variant only needs to implement First and Next (and optionally cursor.Sized)
// to gain the whole derived API of this package: filtering, mapping, bounding, concatenation,
// zipping, folding, comparison and draining into a sink.
//
// The combinators are generic over the concrete upstream type,
// so a pipeline such as
//
//	seqkit.Take(seqkit.Where(seqkit.Range(2, 1000), isPrime), 5)
//
// is driven without interface dispatch.
// When a sequence has to cross an API boundary without exposing its concrete type,
// wrap it with Of into a Seq handle, which forwards the protocol through an interface.
//
// Every variant is a stateful cursor.
// A pipeline must not be driven from more than one goroutine at a time,
// and two pipelines built on the same variant value share its traversal state.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package seqkit
