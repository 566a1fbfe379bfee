// mktoken mints an HS256 access token for calling protected endpoints.
//
// Usage:
//
//	JWT_SECRET=... mktoken -subject alice -role ADMIN
//	JWT_SECRET=... mktoken -subject pvr-ops -role THEATRE_OWNER -partner 3 -ttl 120
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/cinebook/movie-show-booking/internal/utils"
)

func main() {
	subject := flag.String("subject", "", "token subject (required)")
	role := flag.String("role", "ADMIN", "role claim: ADMIN or THEATRE_OWNER")
	partner := flag.Uint64("partner", 0, "owning partner id (THEATRE_OWNER only)")
	ttl := flag.Int("ttl", 60, "token lifetime in minutes")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if *subject == "" {
		log.Fatal("-subject is required")
	}

	tok, err := utils.NewAccessToken(secret, *subject, *role, *partner, *ttl)
	if err != nil {
		log.Fatalf("signing failed: %v", err)
	}
	fmt.Println(tok.Token)
	fmt.Fprintf(os.Stderr, "expires %s\n", tok.Exp.Format("2006-01-02 15:04:05 MST"))
}
