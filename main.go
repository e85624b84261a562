package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/merridan/pxmgo/internal/config"
	"github.com/merridan/pxmgo/internal/converter"
	"github.com/merridan/pxmgo/internal/logging"
	"github.com/merridan/pxmgo/pxm"
)

// findPFMFiles finds all .pfm and .pfm.zst files in a directory
func findPFMFiles(dir string, recursive bool) ([]string, error) {
	var pfmFiles []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isPFMName(path) {
				pfmFiles = append(pfmFiles, path)
			}
			return nil
		})
		return pfmFiles, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && isPFMName(entry.Name()) {
			pfmFiles = append(pfmFiles, filepath.Join(dir, entry.Name()))
		}
	}
	return pfmFiles, nil
}

func isPFMName(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".pfm") || strings.HasSuffix(lower, ".pfm.zst")
}

func main() {
	in := flag.String("in", "", "input directory containing .pfm files (uses pfm_path from config.json if blank)")
	outDir := flag.String("out-dir", "", "output directory for all generated image files")
	format := flag.String("format", "png", "output image format: png or qoi")
	logLevel := flag.String("log-level", "info", "logging level: debug, info, warn, error")
	numWorkers := flag.Int("workers", 8, "number of parallel workers for converting files")
	flag.Parse()

	logging.SetLevel(*logLevel)

	if *format != "png" && *format != "qoi" {
		log.Fatalf("unsupported output format %q (want png or qoi)", *format)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// If no input directory specified, use pfm_path from config
	resolvedInput := *in
	if resolvedInput == "" {
		if cfg.PFMPath == "" {
			log.Fatal("pfm_path not configured in config.json and no input directory provided")
		}
		resolvedInput = cfg.PFMPath
	}
	resolvedOut := *outDir
	if resolvedOut == "" {
		resolvedOut = cfg.OutDir
	}

	// Check that the input directory exists
	if _, err := os.Stat(resolvedInput); err != nil {
		log.Fatal(err)
	}

	// Always process recursively
	pfmFiles, err := findPFMFiles(resolvedInput, true)
	if err != nil {
		log.Fatalf("failed to find .pfm files in directory: %v", err)
	}
	if len(pfmFiles) == 0 {
		log.Fatalf("no .pfm files found in directory: %s", resolvedInput)
	}
	logging.Info("Found %d .pfm file(s) in directory", len(pfmFiles))

	// Parallel worker pool
	jobs := make(chan string, *numWorkers)
	results := make(chan error, len(pfmFiles))

	// Worker function
	worker := func(id int) {
		for pfmFile := range jobs {
			logging.Info("Worker %d converting: %s", id, filepath.Base(pfmFile))
			err := processPFMFile(pfmFile, resolvedOut, *format)
			if err != nil {
				logging.Error("failed to convert %s: %v", pfmFile, err)
			}
			results <- err
		}
	}

	// Start workers
	for w := 0; w < *numWorkers; w++ {
		go worker(w)
	}

	// Send jobs
	for _, pfmFile := range pfmFiles {
		jobs <- pfmFile
	}
	close(jobs)

	// Wait for all results
	for i := 0; i < len(pfmFiles); i++ {
		<-results
	}
}

// processPFMFile decodes a single .pfm (or .pfm.zst) file and writes it out
// as an 8-bit image in the requested format
func processPFMFile(inputPath, outDir, format string) error {
	img, err := pxm.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inputPath, err)
	}

	baseName := filepath.Base(inputPath)
	if strings.HasSuffix(strings.ToLower(baseName), ".zst") {
		baseName = baseName[:len(baseName)-len(".zst")]
	}
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outName := baseName + "." + format

	outPath := outName
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", outDir, err)
		}
		outPath = filepath.Join(outDir, outName)
	}

	rendered := converter.ToImage(img)
	if err := converter.SaveImage(rendered, outPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outPath, err)
	}
	logging.Info("wrote %s", outPath)
	return nil
}
