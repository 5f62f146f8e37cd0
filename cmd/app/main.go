package main

import (
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

// @title Hotelier API
// @version 1.0
// @description Hotel administration backend for rooms, customers, guests and bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
