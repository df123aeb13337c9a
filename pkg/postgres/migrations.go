package postgres

import (
	"database/sql"
	"log"
)

// RunMigrations creates the eyewear fulfillment schema if it is missing.
func RunMigrations(db *sql.DB) error {
	for _, m := range migrations() {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	log.Println("[Postgres] Migrations completed")
	return nil
}

func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			customer_id VARCHAR(36) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id VARCHAR(36) NOT NULL REFERENCES orders(id),
			position INTEGER NOT NULL,
			product_id VARCHAR(64) NOT NULL,
			frame_code VARCHAR(32) NOT NULL,
			lens_code VARCHAR(32) NOT NULL,
			quantity INTEGER NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id VARCHAR(36) PRIMARY KEY,
			kind VARCHAR(10) NOT NULL,
			item_code VARCHAR(32) NOT NULL UNIQUE,
			description VARCHAR(255) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 0),
			minimum_stock_level INTEGER NOT NULL CHECK (minimum_stock_level >= 0),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS supplier_orders (
			id VARCHAR(36) PRIMARY KEY,
			kind VARCHAR(10) NOT NULL,
			item_code VARCHAR(32) NOT NULL,
			quantity INTEGER NOT NULL,
			supplier_id VARCHAR(64) NOT NULL,
			status VARCHAR(20) NOT NULL,
			ordered_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assemblies (
			id VARCHAR(36) PRIMARY KEY,
			order_id VARCHAR(36) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assembly_components (
			assembly_id VARCHAR(36) NOT NULL REFERENCES assemblies(id),
			component_id VARCHAR(64) NOT NULL,
			kind VARCHAR(10) NOT NULL,
			description VARCHAR(255) NOT NULL,
			acquired BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (assembly_id, component_id)
		)`,
		`CREATE TABLE IF NOT EXISTS shipping (
			id VARCHAR(36) PRIMARY KEY,
			order_id VARCHAR(36) NOT NULL UNIQUE,
			street VARCHAR(255) NOT NULL,
			city VARCHAR(128) NOT NULL,
			state VARCHAR(128) NOT NULL,
			postal_code VARCHAR(32) NOT NULL,
			country VARCHAR(64) NOT NULL,
			status VARCHAR(20) NOT NULL,
			tracking_number VARCHAR(64),
			carrier VARCHAR(64),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}
}
