package client

func floatPtr(v float64) *float64 { return &v }

// SampleCatalog is the fixed local dataset shown when the backend is
// unreachable. Freshness is traded for availability: the storefront must
// still render something.
var SampleCatalog = []Product{
	{
		ID:            "mock-1",
		Name:          "Elegantes Sommerkleid",
		Price:         89.99,
		OriginalPrice: floatPtr(119.99),
		Image:         "https://images.unsplash.com/photo-1617019114583-affb34d1b3cd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwyfHxmYXNoaW9uJTIwY2xvdGhpbmd8ZW58MHx8fHwxNzU1Njc0NzM3fDA&ixlib=rb-4.1.0&q=85",
		Category:      "damen",
		IsOnSale:      true,
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Weiß", "Schwarz", "Navy"},
		Description:   "Leichtes Sommerkleid aus atmungsaktivem Stoff, perfekt für warme Tage.",
	},
	{
		ID:          "mock-2",
		Name:        "Herren Business Hemd",
		Price:       65.99,
		Image:       "https://images.unsplash.com/photo-1532453288672-3a27e9be9efd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDF8MHwxfHNlYXJjaHwxfHxmYXNoaW9uJTIwY2xvdGhpbmd8ZW58MHx8fHwxNzU1Njc0NzM3fDA&ixlib=rb-4.1.0&q=85",
		Category:    "herren",
		IsOnSale:    false,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Weiß", "Blau", "Grau"},
		Description: "Klassisches Business-Hemd aus hochwertiger Baumwolle.",
	},
	{
		ID:          "mock-3",
		Name:        "Designer Handtasche",
		Price:       149.99,
		Image:       "https://images.unsplash.com/photo-1654707636800-a8f0acefaee9?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Nzh8MHwxfHNlYXJjaHwxfHxjbG90aGluZyUyMGNhdGFsb2d8ZW58MHx8fHwxNzU1Njc0NzQyfDA&ixlib=rb-4.1.0&q=85",
		Category:    "accessoires",
		IsOnSale:    false,
		Sizes:       []string{"Einheitsgröße"},
		Colors:      []string{"Grün", "Schwarz", "Braun"},
		Description: "Elegante Handtasche aus echtem Leder mit praktischen Fächern.",
	},
	{
		ID:            "mock-4",
		Name:          "Sport Sneaker",
		Price:         95.99,
		OriginalPrice: floatPtr(125.99),
		Image:         "https://images.unsplash.com/photo-1560769629-975ec94e6a86?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwxfHxmYXNoaW9uJTIwcHJvZHVjdHN8ZW58MHx8fHwxNzU1Njc0NzQ4fDA&ixlib=rb-4.1.0&q=85",
		Category:      "schuhe",
		IsOnSale:      true,
		Sizes:         []string{"36", "37", "38", "39", "40", "41", "42", "43", "44"},
		Colors:        []string{"Weiß", "Schwarz", "Grau"},
		Description:   "Bequeme Sneaker für Sport und Freizeit mit optimaler Dämpfung.",
	},
}
