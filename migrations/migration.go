package main

import (
	"assignment-tracker/infra"
	"assignment-tracker/models"
)

func main() {
	infra.Initialize()
	infra.SetupLogger()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Assignment{}, &models.Submission{}); err != nil {
		panic("Failed to migrate database")
	}
}
