package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ryabkov82/translation-merger/internal/merge"
)

func sampleResult() *merge.Result {
	return &merge.Result{
		KeyColumn: "en_US",
		Languages: []string{"fr", "de"},
		Rows: []*merge.Row{
			{Key: "Hello", Values: map[string]string{"fr": "Bonjour", "de": "Hallo"}},
			{Key: "Bye", Values: map[string]string{"fr": "Au revoir"}},
			{Key: "Thanks", Values: map[string]string{"de": "Danke"}},
		},
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)

	path, err := Write(sampleResult(), dir, "merged", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "merged_20260823_150405.xlsx"), path)

	rows := readAll(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"en_US", "fr", "de"}, rows[0])
	assert.Equal(t, []string{"Hello", "Bonjour", "Hallo"}, rows[1])
	// Отсутствующий перевод выводится пустой ячейкой.
	assert.Equal(t, "Bye", rows[2][0])
	assert.Equal(t, "Au revoir", rows[2][1])
	assert.Equal(t, "Thanks", rows[3][0])
	assert.Equal(t, "Danke", rows[3][2])
}

// Языковые колонки выводятся в порядке первого появления, не по алфавиту.
func TestWrite_ColumnOrder(t *testing.T) {
	res := sampleResult()
	res.Languages = []string{"de", "fr"}

	path, err := Write(res, t.TempDir(), "merged", time.Now())
	require.NoError(t, err)

	rows := readAll(t, path)
	assert.Equal(t, []string{"en_US", "de", "fr"}, rows[0])
	assert.Equal(t, []string{"Hello", "Hallo", "Bonjour"}, rows[1])
}

// Два запуска в одну секунду не затирают друг друга.
func TestWrite_NoCollisionWithinSecond(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)

	first, err := Write(sampleResult(), dir, "merged", now)
	require.NoError(t, err)
	second, err := Write(sampleResult(), dir, "merged", now)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "merged_20260823_150405_2.xlsx"), second)
}

func TestWrite_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	path, err := Write(sampleResult(), dir, "merged", time.Now())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestWrite_UnwritableDestination(t *testing.T) {
	// Путь каталога занят обычным файлом, MkdirAll не пройдет.
	dir := filepath.Join(t.TempDir(), "занято")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	_, err := Write(sampleResult(), dir, "merged", time.Now())
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
}
