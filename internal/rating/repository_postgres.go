package rating

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listRatingsQuery = `
		SELECT user_id, product_id, rating, review_text
		FROM ratings
	`
	listRatingsByUserQuery = `
		SELECT user_id, product_id, rating, review_text
		FROM ratings
		WHERE user_id = $1
	`
	upsertRatingQuery = `
		INSERT INTO ratings (user_id, product_id, rating, review_text)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET rating = EXCLUDED.rating, review_text = EXCLUDED.review_text
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Rating {
	return r.query(listRatingsQuery)
}

func (r *PostgresRepository) ListByUser(userID string) []Rating {
	return r.query(listRatingsByUserQuery, userID)
}

func (r *PostgresRepository) Upsert(rating Rating) error {
	_, err := r.db.Exec(upsertRatingQuery, rating.UserID, rating.ProductID, rating.Rating, rating.ReviewText)
	return err
}

func (r *PostgresRepository) query(q string, args ...any) []Rating {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return []Rating{}
	}
	defer rows.Close()

	out := make([]Rating, 0)
	for rows.Next() {
		var (
			rt   Rating
			text sql.NullString
		)
		if err := rows.Scan(&rt.UserID, &rt.ProductID, &rt.Rating, &text); err != nil {
			continue
		}
		if text.Valid {
			rt.ReviewText = text.String
		}
		out = append(out, rt)
	}
	return out
}
