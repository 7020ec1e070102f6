package schema

// SocialFavoriteTable represents the 'social.favorite' table
type SocialFavoriteTable struct {
	Table        string
	UserID       string
	RestaurantID string
	CreatedAt    string
}

// SocialFavorite is the schema definition for social.favorite
var SocialFavorite = SocialFavoriteTable{
	Table:        "social.favorite",
	UserID:       "userid",
	RestaurantID: "restaurantid",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t SocialFavoriteTable) Columns() []string {
	return []string{t.UserID, t.RestaurantID, t.CreatedAt}
}
