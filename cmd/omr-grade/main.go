// Command omr-grade grades a directory of bubble-sheet images against an
// answer key and writes a CSV summary.
//
// Sheets are processed concurrently by a bounded worker pool; a sheet that
// fails (unreadable image, wrong format) is recorded in the summary and does
// not stop the batch. With -identity, the student name and roll number are
// read from each sheet's header via Tesseract OCR.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gradescan/omr-engine/internal/identity"
	"github.com/gradescan/omr-engine/internal/imaging"
	"github.com/gradescan/omr-engine/internal/keys"
	"github.com/gradescan/omr-engine/internal/report"
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
		dir         = flag.String("dir", ".", "directory of sheet images to grade")
		keyID       = flag.String("key", "exam1", "answer key identifier")
		keysDir     = flag.String("keys", "answer_keys", "answer key directory")
		workers     = flag.Int("workers", 4, "concurrent grading workers")
		csvPath     = flag.String("csv", "summary.csv", "CSV summary output path")
		withID      = flag.Bool("identity", false, "OCR student name/roll from sheet headers (requires Tesseract)")
		useMock     = flag.Bool("mock", false, "grade with the mock processor instead of the real engine")
		jsonOut     = flag.Bool("json", false, "also print per-sheet results as JSON lines")
		showVersion = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("omr-grade %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	key, err := keys.NewStore(*keysDir).Load(*keyID)
	if err != nil {
		log.Fatalf("loading answer key: %v", err)
	}

	paths, err := collectImages(*dir)
	if err != nil {
		log.Fatalf("scanning %s: %v", *dir, err)
	}
	if len(paths) == 0 {
		log.Fatalf("no sheet images found in %s", *dir)
	}

	var proc sheet.Processor
	if *useMock {
		proc = sheet.NewMock()
	} else {
		proc = sheet.NewEngine(sheet.DefaultConfig())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items := sheet.ProcessBatch(ctx, proc, paths, key, *workers)

	records := make([]report.StudentRecord, 0, len(items))
	for _, item := range items {
		rec := report.StudentRecord{
			Identity: identity.Info{Name: identity.Unknown, RollNumber: identity.Unknown},
			Item:     item,
		}
		if *withID && item.Error == "" {
			if info, err := extractIdentity(item.ImagePath); err != nil {
				log.Printf("identity for %s: %v", item.ImagePath, err)
			} else {
				rec.Identity = *info
			}
		}
		records = append(records, rec)

		if *jsonOut {
			line, err := json.Marshal(item)
			if err != nil {
				log.Printf("encoding %s: %v", item.ImagePath, err)
				continue
			}
			fmt.Println(string(line))
		}
	}

	out, err := os.Create(*csvPath)
	if err != nil {
		log.Fatalf("creating %s: %v", *csvPath, err)
	}
	defer out.Close()
	if err := report.WriteSummaryCSV(out, records); err != nil {
		log.Fatalf("writing summary: %v", err)
	}

	graded := 0
	for _, item := range items {
		if item.Error == "" {
			graded++
		}
	}
	log.Printf("graded %d/%d sheets, summary written to %s", graded, len(items), *csvPath)
}

// collectImages returns the sheet images under dir, sorted for stable batch
// order.
func collectImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg", ".png":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func extractIdentity(path string) (*identity.Info, error) {
	cache := imaging.NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	defer cache.Evict(path)
	return identity.Extract(img, identity.Config{})
}
