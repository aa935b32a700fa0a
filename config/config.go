package config

import (
	"log"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// JWT_KEY is the HMAC signing key for kiosk session tokens. Populated by Load.
var JWT_KEY []byte

// JWTClaims is the payload carried inside a kiosk session token.
type JWTClaims struct {
	EmployeeId string `json:"employeeId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Load reads the optional .env file and pulls required settings from the
// environment. In hosted deployments the .env file does not exist and the
// variables come from the platform, so a missing file is not an error.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: no .env file found, using system environment variables.")
	}

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal("FATAL ERROR: JWT_KEY not set. Add it to .env or the platform variables.")
	}
	JWT_KEY = []byte(key)
}

// Port returns the listen port, defaulting to 5000 like the original deployment.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5000"
}
