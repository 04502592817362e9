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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-desk/config"
	"hotel-desk/controllers"
	"hotel-desk/routes"
	"hotel-desk/services"
	"hotel-desk/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Restore state before any operation runs. A corrupt snapshot degrades
	// to the seed dataset instead of blocking startup.
	snapshot := store.NewSnapshot(cfg.DataFile)
	st, err := snapshot.Load()
	if err != nil {
		log.Printf("warning: snapshot unreadable, starting from seed data: %v", err)
	} else {
		log.Printf("state loaded from %s", cfg.DataFile)
	}

	// Services
	reservationService := services.NewReservationService(st, snapshot)
	guestService := services.NewGuestService(st, snapshot)
	roomService := services.NewRoomService(st, snapshot)
	staffService := services.NewStaffService(st, snapshot)
	catalogService := services.NewCatalogService(st)
	reportService := services.NewReportService(st)

	// Controllers
	bookingController := controllers.NewBookingController(reservationService)
	guestController := controllers.NewGuestController(guestService)
	roomController := controllers.NewRoomController(roomService, reservationService)
	staffController := controllers.NewStaffController(staffService)
	serviceController := controllers.NewServiceController(catalogService, reservationService)
	reportController := controllers.NewReportController(reportService)

	router := routes.SetupRouter(
		roomController,
		guestController,
		bookingController,
		staffController,
		serviceController,
		reportController,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	// One final write so nothing applied since the last write-through is lost.
	if err := reservationService.SaveNow(); err != nil {
		log.Printf("warning: final snapshot save failed: %v", err)
	}

	log.Println("server stopped gracefully")
}
