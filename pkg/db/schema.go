package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Analyses table: one row per analysis run, whatever path produced it
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    domain TEXT NOT NULL,
    category TEXT NOT NULL,              -- category type label
    industry TEXT NOT NULL,
    depth TEXT NOT NULL,                 -- basic, advanced, deep
    source TEXT NOT NULL,                -- mock | deepseek

    ai_visibility_score INTEGER NOT NULL,
    entity_score INTEGER NOT NULL,
    entity_count INTEGER NOT NULL,
    schema_score INTEGER NOT NULL,
    schema_types INTEGER NOT NULL,
    sge_score INTEGER NOT NULL,
    ai_confidence INTEGER NOT NULL,
    improvement_potential INTEGER NOT NULL,

    -- Per-platform scores as JSON object: {"Google SGE": 62, ...}
    platform_scores TEXT,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_analyses_domain ON analyses(domain);
CREATE INDEX IF NOT EXISTS idx_analyses_category ON analyses(category);
CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
`
