// Package dhwire stores values on pluggable byte providers using the
// project's binary codecs.
//
// The codecs themselves live in subpackages and have no dependencies on this
// package:
//   - b64: standard padded Base64 text encoding.
//   - tlv: type(u16) | length(u32) | value records, big-endian.
//   - codec: Codec[V] adapters (JSON, CBOR, Msgpack, Protobuf, TLV, Base64).
//   - descriptor: hardware descriptor and enable-step payloads over TLV.
//
// Store[V] layers a codec over a Provider (Ristretto, BigCache, Redis, Pebble):
//
//	value --Codec[V]--> payload --entry envelope--> provider
//
// Each stored entry is "DHWE" | version | TLV body carrying the payload, the
// write time and the codec name. Entries that fail to decode are deleted on
// read and reported as misses.
//
// Keys:
//
//	<ns>:<key>
package dhwire
