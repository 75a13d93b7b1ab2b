package seed

import (
	"tradepost/internal/models"
	"tradepost/internal/slugger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent browse category.
type BuiltInCategory struct {
	Name     string
	Icon     string
	Featured bool
	Position int
}

// BuiltInCategories defines the permanent marketplace categories.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Electronics", Icon: "cpu", Featured: true, Position: 1},
	{Name: "Home & Garden", Icon: "home", Featured: true, Position: 2},
	{Name: "Vehicles", Icon: "car", Featured: true, Position: 3},
	{Name: "Fashion", Icon: "shirt", Position: 4},
	{Name: "Sports & Outdoors", Icon: "bike", Position: 5},
	{Name: "Books & Media", Icon: "book", Position: 6},
	{Name: "Toys & Games", Icon: "puzzle", Position: 7},
	{Name: "Pet Supplies", Icon: "paw", Position: 8},
}

// Categories seeds the permanent browse categories, updating display fields
// on re-runs without disturbing products already attached.
func Categories(db *gorm.DB) error {
	for _, item := range BuiltInCategories {
		category := models.Category{
			Name:     item.Name,
			Slug:     slugger.Slugify(item.Name),
			Icon:     item.Icon,
			Featured: item.Featured,
			Position: item.Position,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "icon", "featured", "position"}),
		}).Create(&category).Error
		if err != nil {
			return err
		}
	}
	return nil
}
