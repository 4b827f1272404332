package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var builtinSeeds = []string{
	"",
	"$",
	"lax $.a[0 to last]",
	"$[1:2:0]",
	"$[last - -1]",
	"exists($.a",
	"$.a[",
	"$ ==",
	`$['\q']`,
	"$[99999999999999999999]",
	"!$.a == 1 && $.b || exists($.c)",
	"$.a ? (@ > 1)",
	"$..book[?(@.price <= $.expensive)]",
	"'日本' x",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// каждая строка *.jsonpath: отдельный seed
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".jsonpath" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for _, line := range bytes.Split(src, []byte{'\n'}) {
			if len(bytes.TrimSpace(line)) > 0 {
				f.Add(clampSeed(line))
			}
		}
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
