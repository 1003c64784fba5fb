// Package logger provides env-gated debug logging on top of the standard
// library logger. Debug output goes wherever the standard logger points
// (stderr by default) and is enabled with OMR_DEBUG=1.
package logger

import (
	"log"
	"os"
)

func Debugf(format string, args ...any) {
	if os.Getenv("OMR_DEBUG") == "1" {
		log.Printf("[DEBUG] "+format, args...)
	}
}
