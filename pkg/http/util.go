package http

import (
	"time"

	xutil "FinAdvisor/pkg/util"
)

// ParseDateDefault parses YYYY-MM-DD or returns def if empty/invalid.
func ParseDateDefault(s string, def time.Time) time.Time { return xutil.ParseDateDefault(s, def) }
