package pkg

import (
	"fmt"
	"log"
	"os"
)

// InitLog sends the standard logger to dest. The terminal belongs to the UI,
// so nothing may be logged to stdout while a game runs.
func InitLog(dest, prefix string) (*os.File, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f, nil
}
