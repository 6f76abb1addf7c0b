package configs

import (
	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

// SeedCatalog loads the initial bakery catalog and branch list. FirstOrCreate
// keeps it safe to run on every startup.
func SeedCatalog(db *gorm.DB) error {
	products := []entity.Product{
		{ProductID: "PRD0001", Name: "Matcha Chiffon Cake", Description: "Soft chiffon cake with a fragrant matcha flavour.", Price: 36000, StockQuantity: 30, Category: "Sweet Cakes", ExpirationDate: "7 days"},
		{ProductID: "PRD0002", Name: "Triple Flavour Chiffon", Description: "Chiffon cake combining three flavours.", Price: 22000, StockQuantity: 30, Category: "Sweet Cakes", ExpirationDate: "7 days"},
		{ProductID: "PRD0003", Name: "Lotus Coconut Milk Bread", Description: "Fresh bread filled with lotus paste and coconut milk.", Price: 10000, StockQuantity: 50, Category: "Bread", ExpirationDate: "3 days"},
		{ProductID: "PRD0004", Name: "Walnut Cream Bread", Description: "Crusty bread with walnuts and cream sauce.", Price: 30000, StockQuantity: 50, Category: "Bread", ExpirationDate: "3 days"},
		{ProductID: "PRD0005", Name: "Strawberry Chocolate Donut 45g", Description: "Donut glazed with chocolate and strawberry.", Price: 15000, StockQuantity: 50, Category: "Sweet Cakes", ExpirationDate: "3 days"},
		{ProductID: "PRD0006", Name: "White Chocolate Almond Donut 45g", Description: "White chocolate donut topped with crunchy almonds.", Price: 20000, StockQuantity: 50, Category: "Sweet Cakes", ExpirationDate: "3 days"},
		{ProductID: "PRD0007", Name: "Chocolate Mousse Cake", Description: "Silky chocolate mousse that melts in the mouth.", Price: 390000, StockQuantity: 10, Category: "Cream Cakes", ExpirationDate: "7 days"},
		{ProductID: "PRD0008", Name: "Sweet Heart Cream Cake", Description: "Heart-shaped cream cake for special occasions.", Price: 150000, StockQuantity: 10, Category: "Cream Cakes", ExpirationDate: "7 days"},
		{ProductID: "PRD0009", Name: "Coconut Cookies", Description: "Crunchy cookies with a rich coconut aroma.", Price: 42000, StockQuantity: 20, Category: "Dry Cakes", ExpirationDate: "30 days"},
		{ProductID: "PRD0010", Name: "Almond Cookies", Description: "Buttery cookies studded with almonds.", Price: 42000, StockQuantity: 20, Category: "Dry Cakes", ExpirationDate: "30 days"},
		{ProductID: "PRD0011", Name: "Panna Cotta", Description: "Smooth panna cotta, lightly sweet.", Price: 22000, StockQuantity: 30, Category: "Desserts", ExpirationDate: "7 days"},
		{ProductID: "PRD0012", Name: "Tiramisu 90g", Description: "Tiramisu with coffee and mascarpone cream.", Price: 36000, StockQuantity: 10, Category: "Desserts", ExpirationDate: "7 days"},
	}
	for i := range products {
		if err := db.FirstOrCreate(&products[i], entity.Product{ProductID: products[i].ProductID}).Error; err != nil {
			return err
		}
	}

	branches := []entity.Branch{
		{Name: "Ngu Hanh Son Branch", Address: "479 Mai Dang Chon, Hoa Quy, Ngu Hanh Son, Da Nang", Hotline: "19001900"},
		{Name: "Thanh Khe Branch", Address: "39 Ly Thai Tong, Thanh Khe Tay, Thanh Khe, Da Nang", Hotline: "19001900"},
		{Name: "Lien Chieu Branch", Address: "359 Nguyen Luong Bang, Hoa Khanh Bac, Lien Chieu, Da Nang", Hotline: "19001900"},
		{Name: "Son Tra Branch", Address: "170 Pham Cu Luong, An Hai Bac, Son Tra, Da Nang", Hotline: "19001900"},
	}
	for i := range branches {
		if err := db.FirstOrCreate(&branches[i], entity.Branch{Name: branches[i].Name}).Error; err != nil {
			return err
		}
	}
	return nil
}
