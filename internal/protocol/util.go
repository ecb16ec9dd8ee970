package protocol

import (
	"crypto/rand"
	"encoding/base64"
	mrand "math/rand"
)

// RandParam draws one session parameter uniformly from [ParamMin, ParamMax].
func RandParam() uint32 {
	return uint32(ParamMin + mrand.Intn(ParamMax-ParamMin+1))
}

const asciiUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandText returns k random uppercase ASCII characters.
func RandText(k int) string {
	src := make([]byte, k)
	rand.Read(src)
	for i := range src {
		src[i] = asciiUppercase[src[i]%26]
	}
	return string(src)
}

// RandBlob returns n random bytes encoded as base64.
func RandBlob(n int) string {
	src := make([]byte, n)
	rand.Read(src)
	return base64.StdEncoding.EncodeToString(src)
}
