package main

import (
	"fmt"
	"log"

	"foodorder/configs"
	"foodorder/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedLookups(configs.DB()); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedCatalog(configs.DB()); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
