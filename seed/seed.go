// Package seed fills an empty database with the starter catalog so a fresh
// install renders a storefront immediately.
package seed

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

func floatPtr(v float64) *float64 { return &v }

var categories = []models.Category{
	{Name: "Damen", Slug: "damen", Icon: "user"},
	{Name: "Herren", Slug: "herren", Icon: "users"},
	{Name: "Accessoires", Slug: "accessoires", Icon: "shopping-bag"},
	{Name: "Schuhe", Slug: "schuhe", Icon: "footprints"},
}

var products = []models.Product{
	{
		Name:          "Elegantes Sommerkleid",
		Price:         89.99,
		OriginalPrice: floatPtr(119.99),
		Image:         "https://images.unsplash.com/photo-1617019114583-affb34d1b3cd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwyfHxmYXNoaW9uJTIwY2xvdGhpbmd8ZW58MHx8fHwxNzU1Njc0NzM3fDA&ixlib=rb-4.1.0&q=85",
		Category:      "damen",
		IsOnSale:      true,
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Weiß", "Schwarz", "Navy"},
		Description:   "Leichtes Sommerkleid aus atmungsaktivem Stoff, perfekt für warme Tage.",
		Stock:         25,
	},
	{
		Name:        "Herren Business Hemd",
		Price:       65.99,
		Image:       "https://images.unsplash.com/photo-1532453288672-3a27e9be9efd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxmYXNoaW9uJTIwY2xvdGhpbmd8ZW58MHx8fHwxNzU1Njc0NzM3fDA&ixlib=rb-4.1.0&q=85",
		Category:    "herren",
		IsOnSale:    false,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Weiß", "Blau", "Grau"},
		Description: "Klassisches Business-Hemd aus hochwertiger Baumwolle.",
		Stock:       40,
	},
	{
		Name:        "Designer Handtasche",
		Price:       149.99,
		Image:       "https://images.unsplash.com/photo-1654707636800-a8f0acefaee9?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzh8MHwxfHNlYXJjaHwxfHxjbG90aGluZyUyMGNhdGFsb2d8ZW58MHx8fHwxNzU1Njc0NzQyfDA&ixlib=rb-4.1.0&q=85",
		Category:    "accessoires",
		IsOnSale:    false,
		Sizes:       []string{"Einheitsgröße"},
		Colors:      []string{"Grün", "Schwarz", "Braun"},
		Description: "Elegante Handtasche aus echtem Leder mit praktischen Fächern.",
		Stock:       15,
	},
	{
		Name:          "Sport Sneaker",
		Price:         95.99,
		OriginalPrice: floatPtr(125.99),
		Image:         "https://images.unsplash.com/photo-1560769629-975ec94e6a86?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwxfHxmYXNoaW9uJTIwcHJvZHVjdHN8ZW58MHx8fHwxNzU1Njc0NzQ4fDA&ixlib=rb-4.1.0&q=85",
		Category:      "schuhe",
		IsOnSale:      true,
		Sizes:         []string{"36", "37", "38", "39", "40", "41", "42", "43", "44"},
		Colors:        []string{"Weiß", "Schwarz", "Grau"},
		Description:   "Bequeme Sneaker für Sport und Freizeit mit optimaler Dämpfung.",
		Stock:         30,
	},
	{
		Name:        "Casual Jeans",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1445205170230-053b83016050?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHw0fHxmYXNoaW9uJTIwY2xvdGhpbmd8ZW58MHx8fHwxNzU1Njc0NzM3fDA&ixlib=rb-4.1.0&q=85",
		Category:    "damen",
		IsOnSale:    false,
		Sizes:       []string{"25", "26", "27", "28", "29", "30", "31", "32"},
		Colors:      []string{"Blue Denim", "Black Denim", "Light Wash"},
		Description: "Komfortable Jeans im klassischen Schnitt aus nachhaltiger Baumwolle.",
		Stock:       35,
	},
	{
		Name:        "Luxus Sonnenbrille",
		Price:       189.99,
		Image:       "https://images.unsplash.com/photo-1492707892479-7bc8d5a4ee93?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwyfHxmYXNoaW9uJTIwcHJvZHVjdHN8ZW58MHx8fHwxNzU1Njc0NzQ4fDA&ixlib=rb-4.1.0&q=85",
		Category:    "accessoires",
		IsOnSale:    false,
		Sizes:       []string{"Einheitsgröße"},
		Colors:      []string{"Schwarz", "Braun", "Gold"},
		Description: "Hochwertige Sonnenbrille mit UV-Schutz und polarisierten Gläsern.",
		Stock:       20,
	},
	{
		Name:          "Wintermantel Damen",
		Price:         199.99,
		OriginalPrice: floatPtr(249.99),
		Image:         "https://images.pexels.com/photos/33507998/pexels-photo-33507998.jpeg",
		Category:      "damen",
		IsOnSale:      true,
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Schwarz", "Grau", "Navy"},
		Description:   "Warmer Wintermantel mit Daunen-Füllung für kalte Tage.",
		Stock:         18,
	},
	{
		Name:        "Herren Pullover",
		Price:       55.99,
		Image:       "https://images.pexels.com/photos/33507964/pexels-photo-33507964.jpeg",
		Category:    "herren",
		IsOnSale:    false,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Grau", "Navy", "Schwarz"},
		Description: "Kuscheliger Pullover aus weicher Wolle für gemütliche Stunden.",
		Stock:       45,
	},
}

// Run inserts the starter categories and products, but only into empty
// tables; existing data is never touched.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for i := range categories {
			categories[i].ID = uuid.NewString()
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		log.Printf("✅ %d Kategorien erstellt", len(categories))
	}

	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for i := range products {
			products[i].ID = uuid.NewString()
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("✅ %d Produkte erstellt", len(products))
	}

	return nil
}
