package storage

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    date TEXT NOT NULL,
    news_id TEXT NOT NULL,
    news_title TEXT NOT NULL,
    news_category TEXT NOT NULL,
    summary TEXT NOT NULL,
    choice INTEGER,
    reason TEXT NOT NULL,
    word TEXT NOT NULL,
    opinion_options TEXT NOT NULL DEFAULT '[]',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, news_id)
);

CREATE INDEX IF NOT EXISTS idx_entries_user_created ON entries(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS stats (
    user_id TEXT PRIMARY KEY,
    streak INTEGER NOT NULL DEFAULT 0,
    total INTEGER NOT NULL DEFAULT 0,
    xp INTEGER NOT NULL DEFAULT 0,
    level INTEGER NOT NULL DEFAULT 1,
    last_date TEXT NOT NULL DEFAULT '',
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
