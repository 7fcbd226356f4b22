package merge

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ryabkov82/translation-merger/internal/table"
)

// ConflictPolicy определяет поведение при повторном значении для пары
// ключ+язык. Политика одна и та же внутри файла и между файлами.
type ConflictPolicy string

const (
	// PolicyOverwrite - последнее значение побеждает: поздние строки и
	// файлы считаются актуальными обновлениями.
	PolicyOverwrite ConflictPolicy = "overwrite"
	// PolicyDrop - первое значение сохраняется, повтор отбрасывается
	// с предупреждением.
	PolicyDrop ConflictPolicy = "drop"
)

// ParsePolicy разбирает значение флага -conflict.
func ParsePolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case PolicyOverwrite, PolicyDrop:
		return ConflictPolicy(s), nil
	}
	return "", fmt.Errorf("неизвестная политика конфликтов: %q", s)
}

// Row - одна единица перевода: исходный текст в первоначально встреченном
// виде и переводы по именам языков. На пару ключ+язык хранится не больше
// одного значения.
type Row struct {
	Key    string
	Values map[string]string
}

// Result - объединенная таблица. Строки идут в порядке первого появления
// ключа по всем файлам, языки - в порядке первого появления языка.
type Result struct {
	KeyColumn string
	Languages []string
	Rows      []*Row
}

// Stats - счетчики одного объединения.
type Stats struct {
	RowsMerged  int64
	RowsDropped int64
	Conflicts   int64
}

// Options - настройки объединения, см. config.Config.
type Options struct {
	KeyColumn     string
	SkipBlankKeys bool
	Policy        ConflictPolicy
}

// Merger накапливает объединенную таблицу по мере добавления файлов.
// Файлы должны добавляться в детерминированном порядке: при политике
// overwrite от порядка зависит результат конфликтных ячеек.
type Merger struct {
	opts Options
	log  *slog.Logger

	langs     []string
	seenLangs map[string]bool
	rows      []*Row
	index     map[string]*Row

	stats Stats
}

func New(opts Options, log *slog.Logger) *Merger {
	if opts.Policy == "" {
		opts.Policy = PolicyOverwrite
	}
	return &Merger{
		opts:      opts,
		log:       log,
		seenLangs: make(map[string]bool),
		index:     make(map[string]*Row),
	}
}

// Add вливает строки одного файла в объединенную таблицу. valueCol - имя
// колонки перевода в t, lang - имя целевого языка в итоговой таблице.
// Некорректные строки пропускаются с предупреждением и не прерывают
// объединение.
func (m *Merger) Add(t *table.Table, valueCol, lang string) error {
	keyIdx, ok := t.ColumnIndex(m.opts.KeyColumn)
	if !ok {
		return &table.SchemaError{
			Path:   t.Path,
			Reason: fmt.Sprintf("нет ключевой колонки %q", m.opts.KeyColumn),
		}
	}
	valIdx, ok := t.ColumnIndex(valueCol)
	if !ok {
		return &table.SchemaError{
			Path:   t.Path,
			Reason: fmt.Sprintf("нет колонки перевода %q", valueCol),
		}
	}

	// Первый файл с этим языком фиксирует позицию его колонки в выводе.
	if !m.seenLangs[lang] {
		m.seenLangs[lang] = true
		m.langs = append(m.langs, lang)
	}

	src := filepath.Base(t.Path)

	for i, row := range t.Rows {
		// Номер строки в файле: данные начинаются со второй строки.
		rowNum := i + 2

		if keyIdx >= len(row) {
			m.stats.RowsDropped++
			m.log.Warn("строка не дотягивается до ключевой колонки, пропущена",
				"file", src, "row", rowNum)
			continue
		}

		rawKey := row[keyIdx]
		key := NormalizeKey(rawKey)
		if key == "" && m.opts.SkipBlankKeys {
			m.stats.RowsDropped++
			m.log.Warn("строка с пустым ключом пропущена", "file", src, "row", rowNum)
			continue
		}

		value := ""
		if valIdx < len(row) {
			value = row[valIdx]
		}

		mr, ok := m.index[key]
		if !ok {
			mr = &Row{Key: rawKey, Values: make(map[string]string)}
			m.index[key] = mr
			m.rows = append(m.rows, mr)
		}

		if old, exists := mr.Values[lang]; exists && old != value {
			m.stats.Conflicts++
			if m.opts.Policy == PolicyDrop {
				m.stats.RowsDropped++
				m.log.Warn("конфликт значений, повтор отброшен",
					"file", src, "row", rowNum, "key", rawKey, "lang", lang)
				continue
			}
			m.log.Warn("конфликт значений, значение перезаписано",
				"file", src, "row", rowNum, "key", rawKey, "lang", lang)
		}

		mr.Values[lang] = value
		m.stats.RowsMerged++
	}

	return nil
}

func (m *Merger) Stats() Stats {
	return m.stats
}

// Result возвращает накопленную таблицу. После записи результата
// добавлять файлы в Merger больше нельзя.
func (m *Merger) Result() *Result {
	return &Result{
		KeyColumn: m.opts.KeyColumn,
		Languages: m.langs,
		Rows:      m.rows,
	}
}
