package config

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/ryabkov82/translation-merger/internal/merge"
)

type Config struct {
	InputDir           string
	OutputDir          string
	BaseName           string
	KeyColumn          string               // имя колонки с исходным текстом
	SkipBlankKeys      bool                 // пропускать строки с пустым ключом
	ConflictPolicy     merge.ConflictPolicy // overwrite или drop
	LocaleFromFilename bool                 // имя языка из имени файла, а не из заголовка
	Verbose            bool
}

func ParseFlags() (*Config, error) {

	cfg := &Config{}
	var policy string

	flag.StringVar(&cfg.InputDir, "dir", "", "папка с исходными XLSX файлами")
	flag.StringVar(&cfg.OutputDir, "out", "./output", "папка для результирующего файла")
	flag.StringVar(&cfg.BaseName, "base", "merged", "базовое имя результирующего файла")
	flag.StringVar(&cfg.KeyColumn, "key-column", "en_US", "имя ключевой колонки с исходным текстом")
	flag.BoolVar(&cfg.SkipBlankKeys, "skip-blank", false, "пропускать строки с пустым ключом")
	flag.StringVar(&policy, "conflict", "overwrite", "политика конфликтов: overwrite или drop")
	flag.BoolVar(&cfg.LocaleFromFilename, "locale-from-filename", false, "брать имя языка из имени файла, а не из заголовка колонки")
	flag.BoolVar(&cfg.Verbose, "v", false, "подробное логирование")

	flag.Parse()

	if cfg.InputDir == "" {
		return nil, fmt.Errorf("необходимо указать папку с файлами через -dir")
	}

	p, err := merge.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	cfg.ConflictPolicy = p

	// Нормализация путей
	cfg.InputDir = filepath.Clean(cfg.InputDir)
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)

	return cfg, nil
}
