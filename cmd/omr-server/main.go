// Command omr-server exposes the grading engine over HTTP: upload a sheet
// image with an exam key and get the scored result back as JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gradescan/omr-engine/internal/keys"
	"github.com/gradescan/omr-engine/internal/server"
	"github.com/gradescan/omr-engine/internal/sheet"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		addr        = flag.String("addr", envOr("OMR_ADDR", ":8009"), "HTTP listen address")
		keysDir     = flag.String("keys", envOr("OMR_KEYS_DIR", "answer_keys"), "answer key directory")
		dataDir     = flag.String("data", envOr("OMR_DATA_DIR", "data"), "base directory for uploads and results")
		useMock     = flag.Bool("mock", false, "grade with the mock processor instead of the real engine")
		showVersion = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("omr-server %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	dirs, err := server.NewDirs(*dataDir)
	if err != nil {
		log.Fatalf("preparing data directories: %v", err)
	}

	var proc sheet.Processor
	if *useMock {
		log.Printf("using mock processor")
		proc = sheet.NewMock()
	} else {
		proc = sheet.NewEngine(sheet.DefaultConfig())
	}

	srv := server.New(proc, keys.NewStore(*keysDir), dirs)
	log.Printf("omr-server %s listening on %s", Version, *addr)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
