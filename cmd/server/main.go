package main

import (
	"log"

	_ "focustrack/docs"
	"focustrack/internal/config"
	"focustrack/internal/server"
)

// @title           FocusTrack API
// @version         1.0
// @description     API for tracking hierarchical goals, contacts and goal sharing.

// @host      localhost:8080
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
