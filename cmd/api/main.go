package main

import (
	_ "newpay_simulator/docs"
	"newpay_simulator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           NewPay Strategic Simulator API
// @version         1.0
// @description     Strategic simulation dashboard backend for a payments business: products, clients, strategy frameworks and derived financial metrics.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
