package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// OutputPath builds the output file path for a run. When outputArg names a
// file (anything not ending in a path separator) it is used verbatim;
// otherwise a timestamped name derived from both input basenames is placed
// in outputArg, or next to the generated file when outputArg is empty.
func OutputPath(genPath, refPath, outputArg, prefix, extension string) string {
	if outputArg != "" && !strings.HasSuffix(outputArg, string(filepath.Separator)) && !strings.HasSuffix(outputArg, "/") {
		return outputArg
	}

	genName := truncate(baseName(genPath), 40)
	refName := truncate(baseName(refPath), 25)
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_vs_%s_%s%s", prefix, genName, refName, timestamp, extension)

	outputDir := outputArg
	if outputDir == "" {
		outputDir = filepath.Dir(genPath)
	}
	if outputDir == "" {
		outputDir = "."
	}
	return filepath.Join(outputDir, filename)
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
