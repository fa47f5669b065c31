// main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-backend/internal/api"
	"catalog-backend/internal/config"
	"catalog-backend/internal/store"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Ping(ctx, client); err != nil {
		// Keep serving; store calls fail with 503 until the deployment is reachable.
		log.Printf("MongoDB is not reachable yet: %v", err)
	} else {
		log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	}
	cancel()

	db := client.Database(cfg.DBName)
	handler := api.NewHandler(store.NewProductRepository(db), store.NewUserRepository(db))
	r := api.NewRouter(handler, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("server is running on port : %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("failed to disconnect from MongoDB: %v", err)
	}
	log.Println("server exited")
}
