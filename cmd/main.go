package main

import (
	"backend/config"
	"backend/logger"
	"backend/routes"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}

	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
