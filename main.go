package main

import (
	"log"

	"SMARTATTEND/config"
	"SMARTATTEND/jobs"
	"SMARTATTEND/models"
	"SMARTATTEND/routes"
)

func main() {
	config.Load()
	models.ConnectDatabase()

	scheduler := jobs.StartRecapScheduler()
	defer scheduler.Stop()

	r := routes.Setup()
	log.Printf("Server running on port %s", config.Port())
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
