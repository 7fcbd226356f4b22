package merger

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ryabkov82/translation-merger/internal/config"
	"github.com/ryabkov82/translation-merger/internal/locale"
	"github.com/ryabkov82/translation-merger/internal/merge"
	"github.com/ryabkov82/translation-merger/internal/scan"
	"github.com/ryabkov82/translation-merger/internal/table"
	"github.com/ryabkov82/translation-merger/internal/writer"
)

// SkippedFile - входной файл, исключенный из объединения, с причиной.
type SkippedFile struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Summary - итог одного запуска.
type Summary struct {
	FilesProcessed int           `json:"files_processed"`
	FilesSkipped   []SkippedFile `json:"files_skipped,omitempty"`
	RowsMerged     int64         `json:"rows_merged"`
	RowsDropped    int64         `json:"rows_dropped"`
	Conflicts      int64         `json:"conflicts"`
	OutputPath     string        `json:"output_path,omitempty"`
}

// Runner выполняет один запуск объединения: обход каталога, чтение
// файлов, объединение по ключу и запись результата.
type Runner struct {
	cfg *config.Config
	log *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run обрабатывает файлы строго последовательно в порядке из scan.
// Ошибки чтения и структуры отдельных файлов не прерывают объединение:
// файл пропускается и попадает в Summary с причиной. Ошибка записи
// результата фатальна.
func (r *Runner) Run() (*Summary, error) {

	summary := &Summary{}

	inputFiles, err := scan.InputFiles(r.cfg.InputDir)
	if err != nil {
		return summary, err
	}
	if len(inputFiles) == 0 {
		return summary, fmt.Errorf("в папке %s нет xlsx файлов", r.cfg.InputDir)
	}

	m := merge.New(merge.Options{
		KeyColumn:     r.cfg.KeyColumn,
		SkipBlankKeys: r.cfg.SkipBlankKeys,
		Policy:        r.cfg.ConflictPolicy,
	}, r.log)

	for _, path := range inputFiles {
		if err := r.processInputFile(m, path); err != nil {
			summary.FilesSkipped = append(summary.FilesSkipped, SkippedFile{
				File:   filepath.Base(path),
				Reason: err.Error(),
			})
			r.log.Error("файл пропущен", "file", filepath.Base(path), "err", err)
			continue
		}
		summary.FilesProcessed++
	}

	if summary.FilesProcessed == 0 {
		return summary, fmt.Errorf("не удалось обработать ни один входной файл")
	}

	stats := m.Stats()
	summary.RowsMerged = stats.RowsMerged
	summary.RowsDropped = stats.RowsDropped
	summary.Conflicts = stats.Conflicts

	outputPath, err := writer.Write(m.Result(), r.cfg.OutputDir, r.cfg.BaseName, time.Now())
	if err != nil {
		return summary, err
	}
	summary.OutputPath = outputPath

	r.log.Info("объединение завершено",
		"files", summary.FilesProcessed,
		"rows", summary.RowsMerged,
		"output", outputPath)

	return summary, nil
}

func (r *Runner) processInputFile(m *merge.Merger, path string) error {
	t, err := table.Load(path)
	if err != nil {
		return err
	}

	valueCol, err := t.ValueColumn(r.cfg.KeyColumn)
	if err != nil {
		return err
	}

	lang := valueCol
	if r.cfg.LocaleFromFilename {
		lang = locale.FromFilename(path)
	}
	if !locale.Known(lang) {
		r.log.Warn("имя языка не распознано как код локали",
			"file", filepath.Base(path), "lang", lang)
	}

	r.log.Debug("файл загружен",
		"file", filepath.Base(path), "rows", len(t.Rows), "lang", lang)

	return m.Add(t, valueCol, lang)
}
