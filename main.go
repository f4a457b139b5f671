package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set properties of the predefined Logger, including
	// the log entry prefix and a flag to disable printing
	// the time, source file, and line number.
	log.SetPrefix("lg/daily-nutrition-go-api: ")
	log.SetFlags(0)

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)

	h := newHandler(cfg)
	if err := h.registerRoutes(router); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to set up routes: %v\n", err)
		os.Exit(1)
	}

	log.Printf("[main] listening on %s", cfg.addr())
	if err := http.ListenAndServe(cfg.addr(), corsHandler(cfg, router)); err != nil {
		log.Fatalf("[main] server stopped: %v", err)
	}
}
