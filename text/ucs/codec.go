package ucs

// Decode splits b into scalars.
//
// Each lead byte selects a sequence length of 1 to 4 bytes. Continuation
// bytes are consumed while they match 10xxxxxx; a mismatch or the end of
// input ends the scalar early and it is emitted with the bytes consumed so
// far. A lead byte outside the four classes aborts the decode with a
// *DecodeError and no sequence.
func Decode(b []byte) (Sequence, error) {
	seq := make(Sequence, 0, len(b))

	for i := 0; i < len(b); {
		lead := b[i]

		var need int
		var value uint32
		switch {
		case lead>>7 == 0:
			need, value = 1, uint32(lead)
		case lead>>5 == 0x06:
			need, value = 2, uint32(lead&0x1f)
		case lead>>4 == 0x0e:
			need, value = 3, uint32(lead&0x0f)
		case lead>>3 == 0x1e:
			need, value = 4, uint32(lead&0x07)
		default:
			return nil, &DecodeError{Offset: i, Byte: lead}
		}

		next := i + 1
		for next < len(b) && next-i < need && b[next]>>6 == 0x02 {
			value = value<<6 | uint32(b[next]&0x3f)
			next++
		}

		seq = append(seq, Scalar{Value: value, Offset: i, Length: next - i})
		i = next
	}

	return seq, nil
}

// Encode returns the encoded bytes of a single code point.
//
// Encode accepts the historical 5 and 6 byte forms up to 0x7FFFFFFF so
// that any value a diagnostic might carry can be printed. Values above
// that range return nil.
func Encode(v uint32) []byte {
	switch {
	case v <= 0x7f:
		return []byte{byte(v)}
	case v <= 0x07ff:
		return []byte{
			byte(v>>6) | 0xc0,
			byte(v&0x3f) | 0x80,
		}
	case v <= 0xffff:
		return []byte{
			byte(v>>12&0x0f) | 0xe0,
			byte(v>>6&0x3f) | 0x80,
			byte(v&0x3f) | 0x80,
		}
	case v <= 0x1fffff:
		return []byte{
			byte(v>>18&0x07) | 0xf0,
			byte(v>>12&0x3f) | 0x80,
			byte(v>>6&0x3f) | 0x80,
			byte(v&0x3f) | 0x80,
		}
	case v <= 0x03ffffff:
		return []byte{
			byte(v>>24&0x03) | 0xf8,
			byte(v>>18&0x3f) | 0x80,
			byte(v>>12&0x3f) | 0x80,
			byte(v>>6&0x3f) | 0x80,
			byte(v&0x3f) | 0x80,
		}
	case v <= 0x7fffffff:
		return []byte{
			byte(v>>30&0x01) | 0xfc,
			byte(v>>24&0x3f) | 0x80,
			byte(v>>18&0x3f) | 0x80,
			byte(v>>12&0x3f) | 0x80,
			byte(v>>6&0x3f) | 0x80,
			byte(v&0x3f) | 0x80,
		}
	default:
		return nil
	}
}
