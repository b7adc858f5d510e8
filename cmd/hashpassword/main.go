package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	"github.com/royalstarlog/freightdesk-backend/pkg/security"
)

// Generates an Argon2id hash suitable for the FREIGHTDESK_AUTH_USERS
// credential list.
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "missing -password")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	pwCfg := config.PasswordConfig{ArgonMemoryKB: 65536, ArgonTime: 3, ArgonParallelism: 2, ArgonSaltLen: 16, ArgonKeyLen: 32}
	if err == nil {
		pwCfg = cfg.Password
	}

	hash, err := security.HashPassword(*password, pwCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
