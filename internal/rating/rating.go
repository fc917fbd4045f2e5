package rating

// Rating is a single user's opinion of a product. A user holds at most one
// rating per product; submitting again replaces the previous value.
type Rating struct {
	UserID     string  `json:"user_id"`
	ProductID  string  `json:"product_id"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"review_text,omitempty"`
}

// Upsert returns a copy of ratings with r replacing any existing entry for
// the same (user_id, product_id) pair, appending when none exists. The input
// slice is never mutated. Functionally this is a map keyed by the composite
// user+product key, kept as a slice to match the stored representation.
func Upsert(ratings []Rating, r Rating) []Rating {
	out := make([]Rating, len(ratings))
	copy(out, ratings)
	for i := range out {
		if out[i].UserID == r.UserID && out[i].ProductID == r.ProductID {
			out[i] = r
			return out
		}
	}
	return append(out, r)
}

// ByUser returns the subset of ratings submitted by the given user.
func ByUser(ratings []Rating, userID string) []Rating {
	out := make([]Rating, 0)
	for _, r := range ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
