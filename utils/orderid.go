package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderID returns a new order id of the form FE<millis><suffix>.
// The millisecond timestamp keeps ids roughly ordered; the random suffix
// keeps two orders placed in the same millisecond distinct.
func GenerateOrderID() string {
	return fmt.Sprintf("FE%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
