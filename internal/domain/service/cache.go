package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// QueryCache memoizes read-heavy query results.
type QueryCache interface {
	// Get decodes the cached value into dest and reports a hit.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidatePrefix drops every key under the prefix.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// QueryKey builds a stable key from a prefix and query parameters. Parameter
// order does not matter.
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString("&")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	sum := md5.Sum([]byte(builder.String()))

	return prefix + ":" + hex.EncodeToString(sum[:])
}
