package db

const schema = `
PRAGMA foreign_keys = ON;

-- Runs: one row per segmentation run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    prefix TEXT NOT NULL,
    language TEXT NOT NULL,
    source TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Rounds: one row per exported theme block
CREATE TABLE IF NOT EXISTS rounds (
    round_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    block_index INTEGER NOT NULL,
    theme_count INTEGER NOT NULL,
    question_count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, block_index)
);

CREATE INDEX IF NOT EXISTS idx_rounds_run ON rounds(run_id);

-- Themes: assembled themes in output order
CREATE TABLE IF NOT EXISTS themes (
    theme_id INTEGER PRIMARY KEY AUTOINCREMENT,
    round_id INTEGER NOT NULL,
    number INTEGER NOT NULL,
    name TEXT NOT NULL,
    start_line INTEGER NOT NULL,   -- -1 when the theme has no header line
    end_line INTEGER NOT NULL,
    FOREIGN KEY (round_id) REFERENCES rounds(round_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_themes_round ON themes(round_id);

-- Questions: selected records with original and normalized price
CREATE TABLE IF NOT EXISTS questions (
    question_id INTEGER PRIMARY KEY AUTOINCREMENT,
    theme_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    price INTEGER NOT NULL,
    normalized_price INTEGER NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    FOREIGN KEY (theme_id) REFERENCES themes(theme_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_theme ON questions(theme_id);

-- Artifacts: rendered files (DB stores metadata, disk stores content)
CREATE TABLE IF NOT EXISTS artifacts (
    artifact_id INTEGER PRIMARY KEY AUTOINCREMENT,
    round_id INTEGER NOT NULL,
    format TEXT NOT NULL,
    file_path TEXT NOT NULL,
    size_bytes INTEGER,
    FOREIGN KEY (round_id) REFERENCES rounds(round_id) ON DELETE CASCADE,
    UNIQUE(round_id, format)
);
`
