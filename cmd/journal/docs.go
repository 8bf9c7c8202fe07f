package main

//go:generate swag init -g cmd/journal/main.go -o docs

// @title           Trade Journal API
// @version         0.1.0
// @description     Trade journal CRUD and performance analytics.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
