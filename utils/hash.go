package utils

import (
	"crypto/md5"
	"encoding/hex"
	"io"
)

// Checksum returns the hex MD5 digest of data. Report artifacts are
// identified by job ID plus this digest.
func Checksum(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// ChecksumReader returns the hex MD5 digest of everything readable from r.
func ChecksumReader(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
