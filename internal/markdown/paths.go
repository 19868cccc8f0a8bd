package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputPath maps baseName onto a path under outputDir that does not
// collide with existing files. When outputDir/baseName is taken, the stem is
// probed with increasing -1, -2, ... suffixes until a free name is found.
//
// The existence check runs against the live directory, so the guarantee only
// holds for single-process sequential use.
func ResolveOutputPath(outputDir, baseName string) string {
	candidate := filepath.Join(outputDir, baseName)
	if !pathExists(candidate) {
		return candidate
	}

	ext := filepath.Ext(baseName)
	stem := strings.TrimSuffix(baseName, ext)
	for counter := 1; ; counter++ {
		candidate = filepath.Join(outputDir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
		if !pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
