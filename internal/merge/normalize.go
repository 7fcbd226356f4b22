package merge

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeKey приводит исходный текст к канонической форме для сравнения:
// пробелы по краям обрезаются, внутренние последовательности пробельных
// символов схлопываются в один пробел, регистр сворачивается по правилам
// Unicode case folding. Первоначальный вид текста для вывода сохраняет
// Merger, а не эта функция.
func NormalizeKey(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")
	return cases.Fold().String(collapsed)
}
