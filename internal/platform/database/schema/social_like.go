package schema

// SocialLikeTable represents the 'social.like' table
type SocialLikeTable struct {
	Table        string
	UserID       string
	RestaurantID string
	CreatedAt    string
}

// SocialLike is the schema definition for social.like
var SocialLike = SocialLikeTable{
	// LIKE is a reserved word, so the table name carries its own quoting.
	Table:        `social."like"`,
	UserID:       "userid",
	RestaurantID: "restaurantid",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t SocialLikeTable) Columns() []string {
	return []string{t.UserID, t.RestaurantID, t.CreatedAt}
}
