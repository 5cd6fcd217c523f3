package datastore

import (
	"crypto/md5"
	"encoding/hex"
)

// DefaultURLHashLength is the number of hex characters kept from the digest
const DefaultURLHashLength = 10

// URLHashGenerator derives the fixed-length policy identifier of a URL
type URLHashGenerator struct {
	hashLength int
}

// NewURLHashGenerator creates a new URL hash generator
func NewURLHashGenerator(hashLength int) *URLHashGenerator {
	if hashLength <= 0 || hashLength > md5.Size*2 {
		hashLength = DefaultURLHashLength
	}
	return &URLHashGenerator{
		hashLength: hashLength,
	}
}

// GenerateHash returns the first hashLength hex characters of md5(url)
func (uhg *URLHashGenerator) GenerateHash(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:uhg.hashLength]
}

// ContentMD5 returns the full hex md5 digest of data
func ContentMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
