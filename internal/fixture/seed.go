package fixture

import (
	"gorm.io/gorm"

	"github.com/marketbee/shopfront/internal/hash"
	"github.com/marketbee/shopfront/pkg/api"
)

// Seed loads a small catalog and two accounts so a fresh fixture is usable
// straight away: admin@shopfront.test / admin123 and amit@shopfront.test /
// customer123. No-op when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminHash, err := hash.HashPassword("admin123")
	if err != nil {
		return err
	}
	customerHash, err := hash.HashPassword("customer123")
	if err != nil {
		return err
	}
	users := []User{
		{FullName: "Store Admin", Email: "admin@shopfront.test", PasswordHash: adminHash, Role: api.RoleAdmin},
		{FullName: "Amit Kumar", Email: "amit@shopfront.test", Phone: "9876543210", PasswordHash: customerHash, Role: api.RoleCustomer},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	categories := []Category{
		{Name: "Electronics"},
		{Name: "Books"},
		{Name: "Home & Kitchen"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []Product{
		{Name: "Wireless Headphones", Description: "Over-ear, 30h battery", Price: 2999, Stock: 25, CategoryID: categories[0].ID},
		{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 4499, Stock: 12, CategoryID: categories[0].ID},
		{Name: "USB-C Charger 65W", Description: "GaN, dual port", Price: 1599, Stock: 40, CategoryID: categories[0].ID},
		{Name: "The Pragmatic Programmer", Description: "20th anniversary edition", Price: 650, Stock: 18, CategoryID: categories[1].ID},
		{Name: "Cast Iron Skillet", Description: "Pre-seasoned, 26cm", Price: 1250, Stock: 9, CategoryID: categories[2].ID},
	}
	return db.Create(&products).Error
}
