// cmd/server builds the bare server binary for deployments that only need
// the HTTP process. Database management goes through cmd/vyapari.
package main

import (
	"log"

	"github.com/shashiranjanraj/vyapari/internal/server"

	_ "github.com/shashiranjanraj/vyapari/database/migrations"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
