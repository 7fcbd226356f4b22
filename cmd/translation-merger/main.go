package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ryabkov82/translation-merger/internal/config"
	"github.com/ryabkov82/translation-merger/internal/merger"
)

type Output struct {
	Success bool `json:"success"`
	*merger.Summary
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

func main() {

	start := time.Now()

	cfg, err := config.ParseFlags()
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("Ошибка конфигурации: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	// Лог в stderr, итоговый JSON в stdout.
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: logLevel}))

	r := merger.New(cfg, logger)
	summary, err := r.Run()
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Summary:  summary,
			Error:    fmt.Sprintf("Ошибка объединения: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	emitJSON(Output{
		Success:  true,
		Summary:  summary,
		Duration: time.Since(start).String(),
	})

}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ") // для красивого вывода (опционально)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Ошибка вывода JSON: %v", err)
	}
}
