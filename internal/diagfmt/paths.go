package diagfmt

import (
	"path/filepath"
	"strings"

	"scanfmt/internal/source"
)

const autoPathLimit = 40

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if rel, ok := relativeTo(f.Path, fs.BaseDir()); ok {
			return rel
		}
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAuto:
		if !filepath.IsAbs(f.Path) {
			return f.Path
		}
		if rel, ok := relativeTo(f.Path, fs.BaseDir()); ok {
			return rel
		}
		if len(f.Path) >= autoPathLimit {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}

// relativeTo renders p relative to base; ok is false when p lies outside
// base.
func relativeTo(p, base string) (string, bool) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
