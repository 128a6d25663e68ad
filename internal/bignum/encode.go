package bignum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BigInt{}
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// EncodeMsgpack writes x as its decimal string.
func (x BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack reads a decimal string written by EncodeMsgpack.
func (x *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("bignum: decode msgpack: %w", err)
	}
	*x = v
	return nil
}
