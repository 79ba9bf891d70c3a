package checkrun

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"humane/locate"
)

// ListFiles возвращает отсортированный список всех файлов поддерживаемых
// форматов в директории (рекурсивно).
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := locate.ForPath(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет все поддерживаемые файлы в директории параллельно.
// Результаты идут в порядке ListFiles независимо от порядка завершения
// горутин.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int) ([]Result, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if opts.BaseDir == "" {
		opts.BaseDir = dir
	}

	emitQueued(opts.Progress, files)

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				res, err := Check(gctx, path, opts)
				if err != nil {
					return err
				}

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = res
				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
