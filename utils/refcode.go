package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReferenceCode returns a short quotable booking reference, e.g.
// "7KQ2-M9FD". crypto/rand with big.Int avoids modulo bias on the charset.
func NewReferenceCode() (string, error) {
	raw, err := randomCode(8)
	if err != nil {
		return "", err
	}
	return raw[:4] + "-" + raw[4:], nil
}

func randomCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(refCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(refCharset[num.Int64()])
	}
	return sb.String(), nil
}
