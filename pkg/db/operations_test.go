package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yludeuk/svoyak/models"
)

func testBlocks() []models.ThemeBlock {
	rec := func(price, norm int) models.QuestionRecord {
		return models.QuestionRecord{Price: price, NormalizedPrice: norm, Question: "Вопрос?", Answer: "Ответ: да"}
	}
	return []models.ThemeBlock{
		{Index: 1, Themes: []models.AssembledTheme{
			{Number: 1, Theme: models.Theme{Name: "Реки", Start: 2, End: 20}, Records: []models.QuestionRecord{rec(100, 10), rec(200, 20)}},
			{Number: 2, Theme: models.Theme{Name: "Горы", Start: 20, End: 38}, Records: []models.QuestionRecord{rec(10, 10)}},
		}},
		{Index: 2, Themes: []models.AssembledTheme{
			{Number: 3, Theme: models.Theme{Name: "Моря", Start: -1, End: 50}, Records: []models.QuestionRecord{rec(50, 50)}},
		}},
	}
}

// setupTestDB creates a fresh export database in a temp dir for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Create(filepath.Join(t.TempDir(), "export.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)

	err := db.InsertRun(Run{
		Prefix:   "round",
		Language: models.LanguageRussian,
		Blocks:   testBlocks(),
		Artifacts: []ArtifactRecord{
			{BlockIndex: 1, Format: "docx", FilePath: "round_1.docx", SizeBytes: 1024},
			{BlockIndex: 2, Format: "docx", FilePath: "round_2.docx", SizeBytes: 512},
		},
	})
	if err != nil {
		t.Fatalf("InsertRun() failed: %v", err)
	}

	rounds, err := db.ListRounds()
	if err != nil {
		t.Fatalf("ListRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rounds))
	}
	if rounds[0].ThemeCount != 2 || rounds[0].QuestionCount != 3 {
		t.Errorf("round 1 = %+v, want 2 themes and 3 questions", rounds[0])
	}

	questions, err := db.ListQuestions(1)
	if err != nil {
		t.Fatalf("ListQuestions() failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if questions[1].ThemeName != "Реки" || questions[1].Price != 200 || questions[1].NormalizedPrice != 20 {
		t.Errorf("question 2 = %+v", questions[1])
	}

	var start int
	if err := db.QueryRow("SELECT start_line FROM themes WHERE name = ?", "Моря").Scan(&start); err != nil {
		t.Fatalf("failed to query theme: %v", err)
	}
	if start != -1 {
		t.Errorf("start_line = %d, want -1 for a theme without header", start)
	}

	var artifacts int
	if err := db.QueryRow("SELECT COUNT(*) FROM artifacts").Scan(&artifacts); err != nil {
		t.Fatalf("failed to count artifacts: %v", err)
	}
	if artifacts != 2 {
		t.Errorf("artifacts = %d, want 2", artifacts)
	}
}

func TestInsertRun_UnknownArtifactBlockRollsBack(t *testing.T) {
	db := setupTestDB(t)

	err := db.InsertRun(Run{
		Prefix:    "round",
		Language:  models.LanguageRussian,
		Blocks:    testBlocks(),
		Artifacts: []ArtifactRecord{{BlockIndex: 9, Format: "txt", FilePath: "round_9.txt"}},
	})
	if err == nil {
		t.Fatal("InsertRun() expected error for unknown block")
	}

	var runs int
	if err := db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		t.Fatalf("failed to count runs: %v", err)
	}
	if runs != 0 {
		t.Errorf("runs = %d after failed export, want 0", runs)
	}
}

func TestExportReplacesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")

	for i := 0; i < 2; i++ {
		if err := Export(path, Run{Prefix: "round", Language: models.LanguageRussian, Blocks: testBlocks()}); err != nil {
			t.Fatalf("Export() run %d failed: %v", i, err)
		}
	}

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer database.Close()

	var runs int
	if err := database.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		t.Fatalf("failed to count runs: %v", err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	if database.Path() != path {
		t.Errorf("Path() = %q, want %q", database.Path(), path)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	if err == nil {
		t.Fatal("Open() expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want not-exist", err)
	}
}
