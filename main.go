// file: main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Th3Mauryy/RefZone-sub000/database"
	"github.com/Th3Mauryy/RefZone-sub000/routes"
	"github.com/Th3Mauryy/RefZone-sub000/services"
)

func main() {
	database.Connect()
	database.MigrateTables()

	// Notification queue is optional; without Redis events only get logged.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		database.InitRedis(addr)
		services.SetNotifier(services.RedisNotifier{Queue: "refzone:notifications"})
	}

	interval := 30 * time.Minute
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			interval = d
		} else {
			log.Printf("Invalid SWEEP_INTERVAL %q, keeping %s", raw, interval)
		}
	}
	services.StartSweep(context.Background(), interval)

	r := routes.SetupRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
