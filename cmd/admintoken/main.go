// Command admintoken prints a signed admin token for the maintenance endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/config"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "admin", "value of the sub claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AdminExpiration).GenerateAdminToken(*subject)
	if err != nil {
		log.Fatal("Error generating token: ", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}
