package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Actor{},
		&Genre{},
		&Play{},
		&TheatreHall{},
		&Performance{},
		&Reservation{},
		&Ticket{},
	)
}
