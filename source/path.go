package source

import (
	"os"
	"path/filepath"
)

// PathMode specifies how document paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths as is and shortens long
	// absolute paths to their basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// DisplayPath форматирует путь документа в зависимости от режима.
// baseDir — базовая директория для относительных путей (игнорируется
// остальными режимами; пустая строка означает текущую директорию).
func (d *Document) DisplayPath(mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := AbsolutePath(d.Path); err == nil {
			return abs
		}
		return d.Path

	case PathModeRelative:
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(d.Path, baseDir); err == nil {
			return rel
		}
		return d.Path

	case PathModeBasename:
		return BaseName(d.Path)

	default:
		// Auto: короткий или относительный путь - как есть, иначе basename
		if len(d.Path) < 40 || !filepath.IsAbs(d.Path) {
			return d.Path
		}
		return BaseName(d.Path)
	}
}

// AbsolutePath resolves p to an absolute slash-separated path.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// RelativePath rewrites p relative to baseDir.
func RelativePath(p, baseDir string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(baseDir, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// BaseName returns the last element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
