package main

import (
	_ "bengal_portal/docs"
	"bengal_portal/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bengal Welding Portal API
// @version         1.0
// @description     Jobs, quotes, warranties and support chat for Bengal Welding customers and staff.

// @contact.name   Bengal Welding Support
// @contact.email  support@bengalwelding.co.uk

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
