package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&AirplaneType{},
		&Airplane{},
		&Airport{},
		&Route{},
		&Crew{},
		&Flight{},
		&Order{},
		&Ticket{},
	)
}
