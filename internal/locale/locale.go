package locale

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// FromFilename выводит код локали из имени файла: "de_DE.xlsx" -> "de_de".
// Расширение отбрасывается, регистр понижается. Чистая функция: движок
// объединения о соглашениях именования файлов ничего не знает.
func FromFilename(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(stem)
}

// Known сообщает, распознается ли имя языка как тег BCP 47.
// Форма с подчеркиванием ("de_de") приводится к дефисной перед разбором.
// Нераспознанное имя - не ошибка, только повод для предупреждения.
func Known(code string) bool {
	_, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	return err == nil
}
