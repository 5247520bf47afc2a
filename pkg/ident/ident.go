// Package ident generates the catalog's entity identifiers:
// <prefix>_<base36 timestamp><5 random base36 chars>.
package ident

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 5
)

func New(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
