package graph

import (
	"database/sql"
	"fmt"

	"github.com/agentic-research/wayfind/api"
	_ "modernc.org/sqlite"
)

// SQLite node table. One row per node; the root row has a NULL parent and
// an empty name. Rows are written parent-before-child so a single ordered
// scan can rebuild the arena.
const nodesSchema = `
CREATE TABLE IF NOT EXISTS nodes (
	id     INTEGER PRIMARY KEY,
	parent INTEGER REFERENCES nodes(id),
	name   TEXT NOT NULL,
	leaf   INTEGER NOT NULL DEFAULT 0
)`

// SQLiteGraph serves a model graph from a prebuilt SQLite node table. The
// whole table is materialized into an in-memory arena on open; Reload
// re-reads it and publishes the fresh arena atomically through a
// HotSwapSource, so resolutions in flight keep their old handles while new
// ones see the reloaded graph.
type SQLiteGraph struct {
	db   *sql.DB
	path string
	hot  *HotSwapSource
}

// OpenSQLite opens the database at path and loads the node table.
func OpenSQLite(path string) (*SQLiteGraph, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open graph db: %w", err)
	}
	g, err := loadNodes(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteGraph{db: db, path: path, hot: NewHotSwapSource(g)}, nil
}

// Root implements Source.
func (s *SQLiteGraph) Root() api.Resource {
	return s.hot.Root()
}

// Reload re-reads the node table and swaps the in-memory arena.
func (s *SQLiteGraph) Reload() error {
	g, err := loadNodes(s.db)
	if err != nil {
		return err
	}
	s.hot.Swap(g)
	return nil
}

func (s *SQLiteGraph) Close() error {
	return s.db.Close()
}

func loadNodes(db *sql.DB) (*MemoryGraph, error) {
	rows, err := db.Query(`SELECT id, parent, name, leaf FROM nodes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	g := NewMemoryGraph()
	byRow := map[int64]api.Resource{}
	for rows.Next() {
		var (
			id     int64
			parent sql.NullInt64
			name   string
			leaf   bool
		)
		if err := rows.Scan(&id, &parent, &name, &leaf); err != nil {
			return nil, fmt.Errorf("scan node row: %w", err)
		}
		if !parent.Valid {
			// Root row: already present in a fresh arena.
			byRow[id] = g.Root()
			continue
		}
		p, ok := byRow[parent.Int64]
		if !ok {
			return nil, fmt.Errorf("node %d references unknown parent %d", id, parent.Int64)
		}
		var r api.Resource
		if leaf {
			r, err = g.AddLeaf(p, name)
		} else {
			r, err = g.AddNode(p, name)
		}
		if err != nil {
			return nil, fmt.Errorf("add node %d: %w", id, err)
		}
		byRow[id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}
	return g, nil
}

// SaveSQLite writes a graph's arena to the node table at path, creating
// the table if needed and replacing any previous contents.
func SaveSQLite(path string, g *MemoryGraph) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open graph db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(nodesSchema); err != nil {
		return fmt.Errorf("create nodes table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin graph dump: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op once committed

	if _, err := tx.Exec(`DELETE FROM nodes`); err != nil {
		return fmt.Errorf("clear nodes table: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO nodes (id, parent, name, leaf) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare node insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var insertErr error
	g.Visit(func(id, parent NodeID, name string, leaf bool) {
		if insertErr != nil {
			return
		}
		var p any
		if parent != InvalidID {
			p = int64(parent)
		}
		if _, err := stmt.Exec(int64(id), p, name, leaf); err != nil {
			insertErr = fmt.Errorf("insert node %d: %w", id, err)
		}
	})
	if insertErr != nil {
		return insertErr
	}
	return tx.Commit()
}
