// Package tlv encodes ordered lists of type/value records into a flat byte
// buffer and decodes them back.
//
// Wire layout, repeated until the end of the buffer:
//
//	type(u16 be) | length(u32 be) | value(length)
//
// There is no count prefix, magic number or version field. A decoded buffer
// may be at most MaxDataLen bytes and a single value at most MaxValueLen
// bytes; both limits and all field widths are part of the wire contract.
//
// Decode ignores up to HeaderLen-1 trailing bytes that cannot form a header,
// matching existing peers. Use a Decoder with RejectTrailing set to treat
// them as an error instead.
package tlv
