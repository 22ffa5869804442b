package store

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	orderIDPrefix      = "ORD-"
	tokenLength        = 9
	maxOrderIDAttempts = 8
)

// tokenSpace is 36^9, the number of distinct 9-character base-36 tokens.
const tokenSpace uint64 = 101559956668416

// NewOrderID returns "ORD-" followed by nine uppercase base-36 characters.
func NewOrderID() string {
	return orderIDPrefix + strings.ToUpper(randomToken())
}

// NewProductID returns a nine character lowercase base-36 token for vendor-created listings.
func NewProductID() string {
	return randomToken()
}

func randomToken() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % tokenSpace
	token := strconv.FormatUint(n, 36)
	if len(token) < tokenLength {
		token = strings.Repeat("0", tokenLength-len(token)) + token
	}
	return token
}
