package ral

import (
	"fmt"
	"math"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborOnce    sync.Once
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
	cborErr     error
)

// cborModes returns the shared encoding modes. Encoding is core
// deterministic, so equal lists always encode to identical bytes.
func cborModes() (cbor.EncMode, cbor.DecMode, error) {
	cborOnce.Do(func() {
		cborEncMode, cborErr = cbor.CoreDetEncOptions().EncMode()
		if cborErr != nil {
			return
		}
		// accept every array length the encoder can produce
		cborDecMode, cborErr = cbor.DecOptions{
			MaxArrayElements: math.MaxInt32,
		}.DecMode()
	})
	return cborEncMode, cborDecMode, cborErr
}

// MarshalCBOR encodes l as a CBOR array of its elements, front to back. The
// tree structure is not encoded, it is implied by the length. A list of
// bytes, List[uint8], encodes as a CBOR byte string instead, the way
// fxamacker/cbor encodes []byte.
func (l List[T, C, PC]) MarshalCBOR() ([]byte, error) {
	em, _, err := cborModes()
	if err != nil {
		return nil, err
	}
	return em.Marshal(l.Slice())
}

// UnmarshalCBOR replaces the contents of l with the elements of a CBOR array.
// Options already set on l are kept. The reference l held, if any, is not
// released.
func (l *List[T, C, PC]) UnmarshalCBOR(data []byte) error {
	_, dm, err := cborModes()
	if err != nil {
		return err
	}
	var values []T
	if err = dm.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: %v", ErrCBORDecode, err)
	}
	*l = of[T, C, PC](l.opts, values)
	return nil
}
