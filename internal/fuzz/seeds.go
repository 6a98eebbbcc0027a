package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"scanfmt/internal/driver"
	"scanfmt/internal/source"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap for a single seed
)

// builtinSeeds cover every directive shape the lexer knows.
var builtinSeeds = []string{
	"",
	"%d", "%s", "%c", "%5d", "%10s", "%3c", "%*d", "%*s",
	"%hd", "%ld", "%lld", "%Lf", "%hhx",
	"%d %s", "  %d  %s  ", "\t%d\n%s",
	"Name:%s", "Age:%d Name:%s", "Value: %d",
	"%%", "%d%%", "%%d",
	"%[abc]", "%[a-z]", "%[a-zA-Z0-9]", "%[^abc]", "%[^]]", "%[a-z-]", "%[-a-z]",
	"%[z-a]", "%[]a-c-]", "%[--/]",
	"%d %5s %*c", "%[a-zA-Z0-9_] %*d %%", "%3c %llx %*s",
	"%", "%[abc", "%*", "%5ll", "%18446744073709551616d",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addCatalogSeeds(f)
}

// addCatalogSeeds adds every entry of the repository's testdata catalogs.
func addCatalogSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".fmt" {
			return nil
		}
		fileSet := source.NewFileSet()
		cat, err := driver.LoadCatalog(fileSet, path, false, nil)
		if err != nil {
			return nil
		}
		for _, e := range cat.Entries {
			f.Add(clampSeed(e.Format))
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
