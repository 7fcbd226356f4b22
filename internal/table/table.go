package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadError - файл не удалось открыть или разобрать.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ошибка чтения файла %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError - структура файла не соответствует ожидаемой
// (нет ключевой колонки, нет колонки перевода и т.п.).
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("некорректная структура файла %s: %s", e.Path, e.Reason)
}

// Table - содержимое первого листа xlsx-файла: заголовки и строки данных.
// Все ячейки хранятся как исходные строки: значения вроде "None" или "N/A"
// не превращаются в пустые, строки разной длины не выравниваются.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// Load читает первый лист xlsx-файла в память.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("в файле нет листов")}
	}

	rows, err := f.Rows(sheetList[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	t := &Table{Path: path}

	if rows.Next() {
		headers, err := rows.Columns()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		t.Headers = headers
	}

	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		t.Rows = append(t.Rows, row)
	}

	if err := rows.Close(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return t, nil
}

// ColumnIndex возвращает позицию колонки с указанным заголовком.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// ValueColumn находит колонку перевода: единственную колонку с непустым
// заголовком помимо ключевой. Если ключевой колонки нет или колонок
// перевода не ровно одна - возвращает SchemaError.
func (t *Table) ValueColumn(keyCol string) (string, error) {
	if _, ok := t.ColumnIndex(keyCol); !ok {
		return "", &SchemaError{
			Path:   t.Path,
			Reason: fmt.Sprintf("нет ключевой колонки %q", keyCol),
		}
	}

	valueCols := []string{}
	for _, h := range t.Headers {
		if h != "" && h != keyCol {
			valueCols = append(valueCols, h)
		}
	}

	if len(valueCols) != 1 {
		return "", &SchemaError{
			Path:   t.Path,
			Reason: fmt.Sprintf("ожидается одна колонка перевода, найдено %d", len(valueCols)),
		}
	}

	return valueCols[0], nil
}
