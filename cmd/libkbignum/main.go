// Command libkbignum builds the C shared library with big integer and
// fixed-point decimal operations:
//
//	go build -buildmode=c-shared -o libkbignum.so ./cmd/libkbignum
//
// Every non-null char* returned from the library must be released with
// bigint_free_string, every non-null ByteArrayResult* with
// bigint_free_byte_result. Failures are reported as NULL for pointer
// results and as 0 for numeric ones.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    uint8_t* data;
    uintptr_t len;
} ByteArrayResult;
*/
import "C"

import (
	"bytes"
	"unsafe"

	"github.com/ydb-platform/ydb-go-bignum/internal/boundary"
	"github.com/ydb-platform/ydb-go-bignum/internal/buffer"
)

func main() {}

// cstring copies NUL-terminated s into Go memory. NULL maps to nil.
func cstring(s *C.char) []byte {
	if s == nil {
		return nil
	}

	return C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s)))
}

// cbytes copies data into Go memory. NULL with non-zero length maps to nil,
// NULL with zero length is an empty array.
func cbytes(data *C.uint8_t, n C.uintptr_t) []byte {
	if data == nil {
		if n == 0 {
			return []byte{}
		}

		return nil
	}

	return bytes.Clone(unsafe.Slice((*byte)(unsafe.Pointer(data)), int(n)))
}

func textResult(b *buffer.Text) *C.char {
	if b == nil {
		return nil
	}
	defer func() {
		_ = b.Release()
	}()
	s, err := b.Take()
	if err != nil {
		return nil
	}

	return C.CString(s)
}

func bytesResult(b *buffer.Bytes) *C.ByteArrayResult {
	if b == nil {
		return nil
	}
	defer func() {
		_ = b.Release()
	}()
	p, err := b.Take()
	if err != nil {
		return nil
	}

	r := (*C.ByteArrayResult)(C.malloc(C.size_t(unsafe.Sizeof(C.ByteArrayResult{}))))
	r.data = (*C.uint8_t)(C.CBytes(p))
	r.len = C.uintptr_t(len(p))

	return r
}

// newCStrings copies ss into C memory, free releases all of them.
func newCStrings(ss ...string) (ps []*C.char, free func()) {
	ps = make([]*C.char, len(ss))
	for i, s := range ss {
		ps[i] = C.CString(s)
	}

	return ps, func() {
		for _, p := range ps {
			C.free(unsafe.Pointer(p))
		}
	}
}

// newCBytes copies p into C memory. Empty p maps to NULL.
func newCBytes(p []byte) (data *C.uint8_t, n C.uintptr_t, free func()) {
	if len(p) == 0 {
		return nil, 0, func() {}
	}
	data = (*C.uint8_t)(C.CBytes(p))

	return data, C.uintptr_t(len(p)), func() {
		C.free(unsafe.Pointer(data))
	}
}

// takeText copies s into Go memory and releases it.
func takeText(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	defer bigint_free_string(s)

	return C.GoString(s), true
}

// takeBytes copies r into Go memory and releases it.
func takeBytes(r *C.ByteArrayResult) ([]byte, bool) {
	if r == nil {
		return nil, false
	}
	defer bigint_free_byte_result(r)

	return C.GoBytes(unsafe.Pointer(r.data), C.int(r.len)), true
}

//export bigint_free_string
func bigint_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export bigint_free_byte_result
func bigint_free_byte_result(r *C.ByteArrayResult) {
	if r == nil {
		return
	}
	if r.data != nil {
		C.free(unsafe.Pointer(r.data))
	}
	C.free(unsafe.Pointer(r))
}

//export bigint_from_string_bytes
func bigint_from_string_bytes(s *C.char) *C.ByteArrayResult {
	return bytesResult(boundary.BigintFromStringBytes(cstring(s)))
}

//export bigint_to_string_bytes
func bigint_to_string_bytes(data *C.uint8_t, n C.uintptr_t) *C.char {
	return textResult(boundary.BigintToStringBytes(cbytes(data, n)))
}

//export bigint_add_bytes
func bigint_add_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintAddBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_subtract_bytes
func bigint_subtract_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintSubtractBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_multiply_bytes
func bigint_multiply_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintMultiplyBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_divide_bytes
func bigint_divide_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintDivideBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_mod_bytes
func bigint_mod_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintModBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_abs_bytes
func bigint_abs_bytes(data *C.uint8_t, n C.uintptr_t) *C.ByteArrayResult {
	return bytesResult(boundary.BigintAbsBytes(cbytes(data, n)))
}

//export bigint_signum_bytes
func bigint_signum_bytes(data *C.uint8_t, n C.uintptr_t) C.int32_t {
	return C.int32_t(boundary.BigintSignumBytes(cbytes(data, n)))
}

//export bigint_compare_bytes
func bigint_compare_bytes(aData *C.uint8_t, aLen C.uintptr_t, bData *C.uint8_t, bLen C.uintptr_t) C.int32_t {
	return C.int32_t(boundary.BigintCompareBytes(cbytes(aData, aLen), cbytes(bData, bLen)))
}

//export bigint_to_long_bytes
func bigint_to_long_bytes(data *C.uint8_t, n C.uintptr_t) C.int64_t {
	return C.int64_t(boundary.BigintToLongBytes(cbytes(data, n)))
}

//export bigint_add
func bigint_add(a, b *C.char) *C.char {
	return textResult(boundary.BigintAdd(cstring(a), cstring(b)))
}

//export bigint_subtract
func bigint_subtract(a, b *C.char) *C.char {
	return textResult(boundary.BigintSubtract(cstring(a), cstring(b)))
}

//export bigint_multiply
func bigint_multiply(a, b *C.char) *C.char {
	return textResult(boundary.BigintMultiply(cstring(a), cstring(b)))
}

//export bigint_divide
func bigint_divide(a, b *C.char) *C.char {
	return textResult(boundary.BigintDivide(cstring(a), cstring(b)))
}

//export bigint_mod
func bigint_mod(a, b *C.char) *C.char {
	return textResult(boundary.BigintMod(cstring(a), cstring(b)))
}

//export bigint_pow
func bigint_pow(base *C.char, exponent C.uint32_t) *C.char {
	return textResult(boundary.BigintPow(cstring(base), uint32(exponent)))
}

//export bigint_abs
func bigint_abs(a *C.char) *C.char {
	return textResult(boundary.BigintAbs(cstring(a)))
}

//export bigint_signum
func bigint_signum(a *C.char) C.int32_t {
	return C.int32_t(boundary.BigintSignum(cstring(a)))
}

//export bigint_compare
func bigint_compare(a, b *C.char) C.int32_t {
	return C.int32_t(boundary.BigintCompare(cstring(a), cstring(b)))
}

//export bigint_gcd
func bigint_gcd(a, b *C.char) *C.char {
	return textResult(boundary.BigintGCD(cstring(a), cstring(b)))
}

//export bigint_to_long
func bigint_to_long(a *C.char) C.int64_t {
	return C.int64_t(boundary.BigintToLong(cstring(a)))
}

//export bigdecimal_add
func bigdecimal_add(a, b *C.char, scale C.int32_t) *C.char {
	return textResult(boundary.BigdecimalAdd(cstring(a), cstring(b), int32(scale)))
}

//export bigdecimal_subtract
func bigdecimal_subtract(a, b *C.char, scale C.int32_t) *C.char {
	return textResult(boundary.BigdecimalSubtract(cstring(a), cstring(b), int32(scale)))
}

//export bigdecimal_multiply
func bigdecimal_multiply(a, b *C.char, scale C.int32_t) *C.char {
	return textResult(boundary.BigdecimalMultiply(cstring(a), cstring(b), int32(scale)))
}

//export bigdecimal_divide
func bigdecimal_divide(a, b *C.char, scale C.int32_t) *C.char {
	return textResult(boundary.BigdecimalDivide(cstring(a), cstring(b), int32(scale)))
}

//export bigdecimal_abs
func bigdecimal_abs(a *C.char) *C.char {
	return textResult(boundary.BigdecimalAbs(cstring(a)))
}

//export bigdecimal_signum
func bigdecimal_signum(a *C.char) C.int32_t {
	return C.int32_t(boundary.BigdecimalSignum(cstring(a)))
}

//export bigdecimal_compare
func bigdecimal_compare(a, b *C.char) C.int32_t {
	return C.int32_t(boundary.BigdecimalCompare(cstring(a), cstring(b)))
}

//export bigdecimal_set_scale
func bigdecimal_set_scale(a *C.char, scale, roundingMode C.int32_t) *C.char {
	return textResult(boundary.BigdecimalSetScale(cstring(a), int32(scale), int32(roundingMode)))
}

//export bigdecimal_to_biginteger
func bigdecimal_to_biginteger(a *C.char) *C.char {
	return textResult(boundary.BigdecimalToBiginteger(cstring(a)))
}
