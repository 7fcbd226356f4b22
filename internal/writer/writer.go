package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ryabkov82/translation-merger/internal/merge"
)

// WriteError - не удалось записать результирующий файл. Фатальная
// ошибка: без выходного файла запуск считается неуспешным.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("ошибка записи файла %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

const sheetName = "merged"

// Write сохраняет объединенную таблицу в каталог dir. Порядок колонок:
// ключевая, затем языки в порядке первого появления. Имя файла - base
// плюс отметка времени с точностью до секунды; если такой файл уже есть,
// добавляется числовой суффикс, поэтому последовательные запуски в одну
// секунду не затирают друг друга.
func Write(res *merge.Result, dir, base string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}

	path := outputPath(dir, base, now)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return "", &WriteError{Path: path, Err: fmt.Errorf("ошибка создания StreamWriter: %v", err)}
	}

	header := make([]interface{}, 0, len(res.Languages)+1)
	header = append(header, res.KeyColumn)
	for _, lang := range res.Languages {
		header = append(header, lang)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return "", &WriteError{Path: path, Err: fmt.Errorf("ошибка записи заголовков: %v", err)}
	}

	for i, row := range res.Rows {
		rowData := make([]interface{}, 0, len(res.Languages)+1)
		rowData = append(rowData, row.Key)
		for _, lang := range res.Languages {
			rowData = append(rowData, row.Values[lang])
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := sw.SetRow(cell, rowData); err != nil {
			return "", &WriteError{Path: path, Err: fmt.Errorf("ошибка записи строки: %v", err)}
		}
	}

	if err := sw.Flush(); err != nil {
		return "", &WriteError{Path: path, Err: fmt.Errorf("ошибка финального flush: %v", err)}
	}
	if err := f.SaveAs(path); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

func outputPath(dir, base string, now time.Time) string {
	stamp := now.Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", base, stamp))
	for n := 2; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%s_%d.xlsx", base, stamp, n))
	}
}
