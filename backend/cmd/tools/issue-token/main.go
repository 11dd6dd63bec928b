package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/itchan-dev/confluence-bridge/shared/config"
	"github.com/itchan-dev/confluence-bridge/shared/domain"
	"github.com/itchan-dev/confluence-bridge/shared/jwt"
)

func main() {
	var configFolder, clientName string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&clientName, "client", "", "name of the client the token is issued to")
	flag.Parse()

	if clientName == "" {
		log.Fatal("-client is required")
	}

	cfg := config.MustLoad(configFolder)
	if cfg.JwtKey() == "" {
		log.Fatal("jwt_key is not configured, the gateway runs without authentication")
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.Client{Name: clientName})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Printf("  Gateway token for %q (valid %s)\n", clientName, cfg.JwtTTL())
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Send it as: Authorization: Bearer <token>")
	fmt.Println("=================================================")
}
