package checkrun

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"humane/internal/observ"
	"humane/locate"
	"humane/snippet"
	"humane/source"
)

// Options управляет проверкой файлов.
type Options struct {
	// Context задаёт радиус окна вокруг строки с ошибкой.
	// Ноль или меньше означает радиус, предпочитаемый адаптером формата.
	Context int
	// Notes добавляет панель с заметками под блоком.
	Notes []string
	// Style выбирает стиль блока.
	Style snippet.Style
	// PathMode определяет, как печатать путь в заголовке блока.
	PathMode source.PathMode
	// BaseDir is the base for relative path display.
	BaseDir string
	// Progress receives per-file progress events. Nil disables reporting.
	Progress ProgressSink
}

// Result описывает исход проверки одного файла.
type Result struct {
	Path    string          // путь, как его видел вызов
	Format  string          // имя адаптера
	OK      bool            // документ декодировался без ошибок
	Located bool            // ошибка привязана к строке документа
	Pos     locate.Position // позиция ошибки, если Located
	Rows    []string        // готовый блок, если Located
	RawErr  error           // ошибка загрузки или декодирования
	Timing  *observ.Report  // фазовые замеры
}

// Check loads one file, decodes it with the adapter matching its
// extension, and renders the located error into a block. Load and decode
// failures land in the Result; only an unsupported extension or a
// canceled context produce an error.
func Check(ctx context.Context, path string, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	adapter, ok := locate.ForPath(path)
	if !ok {
		return Result{}, fmt.Errorf("no adapter for %q (supported: %s)", path, supportedExts())
	}

	res := Result{Path: path, Format: adapter.Name}
	timer := observ.NewTimer()

	emit(opts.Progress, path, StageRead, StatusWorking, nil, 0)
	idx := timer.Begin("read")
	doc, err := source.Load(path)
	timer.End(idx, "")
	if err != nil {
		res.RawErr = fmt.Errorf("failed to load file: %w", err)
		res.Timing = reportPtr(timer)
		emit(opts.Progress, path, StageRead, StatusError, res.RawErr, timer.Elapsed())
		return res, nil
	}

	emit(opts.Progress, path, StageValidate, StatusWorking, nil, 0)
	idx = timer.Begin("decode")
	decodeErr := adapter.Validate(doc)
	timer.End(idx, adapter.Name)
	if decodeErr == nil {
		res.OK = true
		res.Timing = reportPtr(timer)
		emit(opts.Progress, path, StageValidate, StatusDone, nil, timer.Elapsed())
		return res, nil
	}
	res.RawErr = decodeErr

	idx = timer.Begin("locate")
	pos, located := adapter.Position(decodeErr, doc)
	timer.End(idx, "")
	if !located {
		res.Timing = reportPtr(timer)
		emit(opts.Progress, path, StageValidate, StatusError, decodeErr, timer.Elapsed())
		return res, nil
	}

	emit(opts.Progress, path, StageRender, StatusWorking, nil, 0)
	radius := opts.Context
	if radius <= 0 {
		radius = adapter.Context
	}
	if radius <= 0 {
		radius = snippet.DefaultContext
	}

	idx = timer.Begin("render")
	rows, renderErr := snippet.Render(doc, snippet.Request{
		Cause:   pos.Cause,
		Line:    pos.Line,
		Column:  pos.Column,
		Context: radius,
		Notes:   opts.Notes,
		Style:   opts.Style,
		Path:    doc.DisplayPath(opts.PathMode, opts.BaseDir),
	})
	timer.End(idx, "")
	res.Timing = reportPtr(timer)
	if renderErr != nil {
		// парсер сообщил позицию за пределами документа; падаем обратно
		// на сырой текст ошибки
		emit(opts.Progress, path, StageRender, StatusError, decodeErr, timer.Elapsed())
		return res, nil
	}

	res.Located = true
	res.Pos = pos
	res.Rows = rows
	emit(opts.Progress, path, StageRender, StatusError, decodeErr, timer.Elapsed())
	return res, nil
}

func reportPtr(t *observ.Timer) *observ.Report {
	report := t.Report()
	return &report
}

func supportedExts() string {
	var exts []string
	for _, a := range locate.Supported() {
		exts = append(exts, a.Extensions...)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
