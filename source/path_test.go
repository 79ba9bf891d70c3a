package source

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestDisplayPathModes проверяет режимы отображения путей
func TestDisplayPathModes(t *testing.T) {
	doc := New("/home/user/project/configs/app.toml", []byte("a = 1"))

	if got := doc.DisplayPath(PathModeBasename, ""); got != "app.toml" {
		t.Errorf("Expected basename %q, got %q", "app.toml", got)
	}

	got := doc.DisplayPath(PathModeRelative, "/home/user/project")
	if got != "configs/app.toml" {
		t.Errorf("Expected relative path %q, got %q", "configs/app.toml", got)
	}

	abs := doc.DisplayPath(PathModeAbsolute, "")
	if !filepath.IsAbs(filepath.FromSlash(abs)) {
		t.Errorf("Expected absolute path, got %q", abs)
	}
	if !strings.HasSuffix(abs, "app.toml") {
		t.Errorf("Expected absolute path to end with app.toml, got %q", abs)
	}
}

func TestDisplayPathAuto(t *testing.T) {
	// Короткий путь остаётся как есть
	short := New("configs/app.json", []byte("{}"))
	if got := short.DisplayPath(PathModeAuto, ""); got != "configs/app.json" {
		t.Errorf("Expected short path unchanged, got %q", got)
	}

	// Длинный абсолютный путь сокращается до basename
	long := New("/very/long/absolute/path/to/some/deep/directory/config.yaml", []byte("a: 1"))
	if got := long.DisplayPath(PathModeAuto, ""); got != "config.yaml" {
		t.Errorf("Expected basename for long absolute path, got %q", got)
	}
}

func TestNormalizePathOnLoadName(t *testing.T) {
	doc := New("./a/../b/c.json", []byte("{}"))
	// New не трогает имя виртуального документа
	if doc.Path != "./a/../b/c.json" {
		t.Errorf("Expected virtual name preserved, got %q", doc.Path)
	}

	if got := normalizePath("./a/../b/c.json"); got != "b/c.json" {
		t.Errorf("Expected cleaned path %q, got %q", "b/c.json", got)
	}
}
