package schema

// CoreRestaurantTable represents the 'core.restaurant' table
type CoreRestaurantTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Tel          string
	Address      string
	OpeningHours string
	Description  string
	ImageURL     string
	CategoryID   string
	CreatedAt    string
	UpdatedAt    string
}

// CoreRestaurant is the schema definition for core.restaurant
var CoreRestaurant = CoreRestaurantTable{
	Table:        "core.restaurant",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	Tel:          "tel",
	Address:      "address",
	OpeningHours: "openinghours",
	Description:  "description",
	ImageURL:     "imageurl",
	CategoryID:   "categoryid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CoreRestaurantTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Tel, t.Address, t.OpeningHours,
		t.Description, t.ImageURL, t.CategoryID, t.CreatedAt, t.UpdatedAt,
	}
}
