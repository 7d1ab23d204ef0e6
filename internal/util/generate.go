package util

import (
	"fmt"
	"path"
	"time"
)

// ObjectKey salts the original filename with a high-resolution timestamp so
// every upload lands under a fresh object key. The filename is kept for
// uniqueness only; any directory components are stripped.
func ObjectKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), path.Base(filename))
}
