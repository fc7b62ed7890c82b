package main

import (
	"context"
	"log"

	"github.com/nexaur/nexaur-api/internal/bootstrap"
)

func main() {
	app, err := bootstrap.NewApp(context.Background())
	if err != nil {
		log.Fatalf("error initializing application: %v", err)
	}

	log.Println("Nexaur API listening on port:", app.Config.Port)
	if err := app.Server.Start(":" + app.Config.Port); err != nil {
		log.Fatal(err)
	}
}
