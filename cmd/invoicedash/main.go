package main

import "github.com/GlebRadaev/invoicedash/cmd/invoicedash/commands"

//	@title			Invoicedash API
//	@version		1.0
//	@description	Invoicing dashboard API Server

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	commands.Execute()
}
