package main

import (
	"truckservice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
