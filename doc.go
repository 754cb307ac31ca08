// Package bridgely converts wire-shaped payloads (null, bool, number,
// string, list, object) into typed host-model values and back. Conversion
// strategies form an open, priority-ordered set: reference resolution,
// structured value and layer-mask decoding, enums, collections, composite
// structs and primitives are built in, and callers can interpose their own
// converters at any priority. A failed conversion degrades to the type
// default instead of corrupting sibling data, and serialization round
// trips the supported types.
package bridgely
