package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const txnIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTransactionID builds a transaction identifier of the form
// TXN-<unix millis>-<9 random alphanumerics>. The time component keeps ids
// sortable; the random tail keeps concurrent initiations distinct.
func GenerateTransactionID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to time
		for i := range buf {
			buf[i] = txnIDAlphabet[int(time.Now().UnixNano()>>uint(i))%len(txnIDAlphabet)]
		}
	}
	for i, b := range buf {
		buf[i] = txnIDAlphabet[int(b)%len(txnIDAlphabet)]
	}
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), string(buf))
}
