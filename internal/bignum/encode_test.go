package bignum

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestMsgpackRoundTrip(t *testing.T) {
	type wrapper struct {
		Name  string
		Value BigInt
		Ptr   *BigInt
	}
	big := MustParse("-123456789012345678901234567890")
	in := wrapper{Name: "x", Value: big, Ptr: &big}
	data, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out wrapper
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.Value.Equal(big) || out.Ptr == nil || !out.Ptr.Equal(big) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	requireCanonical(t, out.Value)
}

func TestMsgpackRejectsMalformedText(t *testing.T) {
	data, err := msgpack.Marshal("12x")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var x BigInt
	if err := msgpack.Unmarshal(data, &x); err == nil {
		t.Fatalf("expected decode error")
	}
}
