package catalog

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, asin, title, category, price, rating, review_count, image_url, description, tags, amazon_link
		FROM products
		ORDER BY id
	`
	insertProductQuery = `
		INSERT INTO products (id, asin, title, category, price, rating, review_count, image_url, description, tags, amazon_link)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	deleteProductsQuery = `DELETE FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var (
			p    Product
			tags pq.StringArray
			link sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ASIN, &p.Title, &p.Category, &p.Price, &p.Rating, &p.ReviewCount, &p.ImageURL, &p.Description, &tags, &link); err != nil {
			continue
		}
		p.Tags = []string(tags)
		if link.Valid {
			p.AmazonLink = link.String
		}
		out = append(out, p)
	}
	return out
}

// Reset replaces the whole products table inside a single transaction so
// readers never observe a half-written catalog.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(deleteProductsQuery); err != nil {
		tx.Rollback()
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(insertProductQuery,
			p.ID, p.ASIN, p.Title, p.Category, p.Price, p.Rating, p.ReviewCount,
			p.ImageURL, p.Description, pq.Array(p.Tags), p.AmazonLink,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
