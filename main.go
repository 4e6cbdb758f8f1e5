package main

import (
	"log"

	"github.com/spf13/pflag"

	"github.com/checkmarble/todo-backend/cmd"
)

// Overridden at build time with -ldflags "-X main.apiVersion=..."
var apiVersion = "local-dev"

func main() {
	shouldRunMigrations := pflag.Bool("migrations", false, "Run migrations")
	shouldRunServer := pflag.Bool("server", false, "Run server")
	pflag.Parse()

	compiledConfig := cmd.CompiledConfig{Version: apiVersion}

	if !*shouldRunMigrations && !*shouldRunServer {
		log.Fatal("nothing to do, pass --migrations and/or --server")
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}
}
