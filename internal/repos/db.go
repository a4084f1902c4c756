package repos

import (
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	mem := dsn == ":memory:"
	// A bare PRAGMA statement only configures the connection that runs it;
	// the _pragma DSN parameter makes the driver apply it to every pooled
	// connection, so foreign keys stay enforced after pool churn.
	if !strings.Contains(dsn, "_pragma") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if mem {
		// each pooled connection gets its own in-memory database
		db.SetMaxOpenConns(1)
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline reference data if DB is empty (brands/locations)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Brands (manufacturers)
CREATE TABLE IF NOT EXISTS brands(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_brands_name_nocase ON brands(LOWER(name));

-- Locations
CREATE TABLE IF NOT EXISTS locations(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_locations_name_nocase ON locations(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  serial_no TEXT NOT NULL DEFAULT '',
  brand_id TEXT REFERENCES brands(id) ON DELETE RESTRICT,
  model TEXT NOT NULL DEFAULT '',
  rack_mountable INTEGER NOT NULL DEFAULT 0,
  is_part INTEGER NOT NULL DEFAULT 0,
  warranty_months INTEGER NOT NULL DEFAULT 0 CHECK (warranty_months >= 0),
  date_of_purchase TEXT NOT NULL DEFAULT '',
  tag TEXT NOT NULL DEFAULT '',
  created_by TEXT REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_title      ON products(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_products_serial     ON products(LOWER(serial_no));
CREATE INDEX IF NOT EXISTS idx_products_brand      ON products(brand_id);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- History entries: one row per location assignment, ordered by seq.
-- product_id carries no foreign key on purpose: deleting a product orphans
-- its history rows instead of cascading.
CREATE TABLE IF NOT EXISTS history(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  seq INTEGER NOT NULL CHECK (seq >= 0),
  location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE RESTRICT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(product_id, seq)
);
CREATE INDEX IF NOT EXISTS idx_history_product ON history(product_id);

-- Status entries: append-only per history entry.
CREATE TABLE IF NOT EXISTS status_entries(
  id TEXT PRIMARY KEY,
  history_id TEXT NOT NULL REFERENCES history(id),
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_status_history ON status_entries(history_id);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM brands`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting baseline brands/locations")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO brands(id,name) VALUES
	  ('brand-dell','Dell'),
	  ('brand-hp','HP'),
	  ('brand-cisco','Cisco'),
	  ('brand-apc','APC')`)

	tx.MustExec(`INSERT INTO locations(id,name) VALUES
	  ('loc-hq','Headquarters'),
	  ('loc-rack-a','Rack Room A'),
	  ('loc-storage','Storage'),
	  ('loc-repair','Repair Bench')`)

	return tx.Commit()
}

// seedUsers ensures two USERs and one ADMIN exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-alice", "alice@inventory.test", "Alice", "USER", "Passw0rd!"),
		mk("u-bob", "bob@inventory.test", "Bob", "USER", "Passw0rd!"),
		mk("u-admin", "admin@inventory.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
