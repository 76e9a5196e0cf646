package ral

import "errors"

var (
	ErrNotSkewBinary = errors.New("ral: tree sizes are not a canonical skew binary numeral")
	ErrTreeShape     = errors.New("ral: tree is not complete")
	ErrSizeMismatch  = errors.New("ral: recorded size does not match the structure")
	ErrCBORDecode    = errors.New("ral: cbor decode of list failed")
)
