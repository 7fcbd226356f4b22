package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputFiles собирает xlsx-файлы из каталога dir. Временные файлы Excel
// ("~$...") пропускаются. Список сортируется по имени без расширения в
// нижнем регистре, чтобы порядок объединения был детерминированным и не
// зависел от файловой системы.
func InputFiles(dir string) ([]string, error) {
	inputFiles := []string{}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".xlsx" {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), "~$") {
			return nil
		}

		inputFiles = append(inputFiles, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при обходе папки: %w", err)
	}

	sort.Slice(inputFiles, func(i, j int) bool {
		return sortKey(inputFiles[i]) < sortKey(inputFiles[j])
	})

	return inputFiles, nil
}

func sortKey(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
