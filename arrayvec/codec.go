// File: arrayvec/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CBOR encoding of the live prefix.

package arrayvec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/momentics/arrayvec/api"
)

// encMode uses Core Deterministic Encoding, so equal vectors encode to
// identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("arrayvec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("arrayvec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the live elements as a CBOR array. An empty vector
// encodes as an empty array, never as null.
func (v *ArrayVec[T, A]) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(v.AsSlice())
}

// UnmarshalCBOR replaces the contents of v with a decoded CBOR array.
// Existing elements are released first. An array longer than Cap() is
// rejected with api.ErrCapacityExceeded and v is left untouched.
func (v *ArrayVec[T, A]) UnmarshalCBOR(data []byte) error {
	var items []T
	if err := decMode.Unmarshal(data, &items); err != nil {
		return err
	}
	if len(items) > v.Cap() {
		return api.NewError(api.ErrCodeCapacityExceeded, "arrayvec: decoded array exceeds capacity").
			WithContext("cap", v.Cap()).
			WithContext("items", len(items))
	}
	v.Clear()
	copy(v.slots(), items)
	v.n = len(items)
	return nil
}
