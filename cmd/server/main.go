package main

import (
	"log"

	_ "nextin/docs"
	"nextin/internal/config"
	"nextin/internal/server"
)

// @title           NextIn Board API
// @version         1.0
// @description     Kanban issue board with optimistic move reconciliation.

// @host      localhost:4000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
