package cache

import (
	"fmt"
	"time"
)

// GenerateKeyWithParams creates a cache key with multiple parameters.
// time.Time params are rendered as calendar dates.
func GenerateKeyWithParams(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		if t, ok := param.(time.Time); ok {
			param = t.Format("2006-01-02")
		}
		key = fmt.Sprintf("%s:%v", key, param)
	}
	return key
}
