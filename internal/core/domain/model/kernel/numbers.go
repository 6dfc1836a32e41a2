package kernel

import (
	"fmt"
	"strings"
	"time"
)

// BusinessNumber builds the human-readable identifiers used across the
// domain (ORD-, PT-, PAT-, PKG-, SHP-). The timestamp makes numbers sortable
// by creation time; the ID prefix keeps them unique within a second.
func BusinessNumber(prefix string, t time.Time, id UUID) string {
	return fmt.Sprintf("%s-%s-%s", prefix, t.Format("20060102150405"),
		strings.ToUpper(id.String()[:8]))
}
