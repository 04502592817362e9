package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-desk/controllers"
	"hotel-desk/middleware"
)

// SetupRouter wires the controller instances onto the API surface. Handlers
// never validate beyond structure and never format output; they call engine
// operations and render the result.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	stc *controllers.StaffController,
	svc *controllers.ServiceController,
	repc *controllers.ReportController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// must stay ahead of /:number
			rooms.GET("/search", rc.SearchRooms)

			rooms.GET("/:number", rc.GetRoom)
			rooms.PATCH("/:number", rc.UpdateRoom)
			rooms.POST("/:number/maintenance", rc.SetMaintenance)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.GET("/:id", gc.GetGuest)
			guests.PATCH("/:id", gc.UpdateGuest)
			guests.PUT("/:id/vip", gc.SetVIP)
			guests.GET("/:id/bookings", gc.GetGuestBookings)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.Cancel)
			bookings.POST("/:id/payment", bc.SettlePayment)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", stc.GetStaff)
			staff.POST("", stc.CreateStaff)
			staff.PATCH("/:id", stc.UpdateStaff)
		}

		catalog := api.Group("/services")
		{
			catalog.GET("", svc.GetServices)
			catalog.POST("/:id/orders", svc.OrderService)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/occupancy", repc.Occupancy)
			reports.GET("/revenue", repc.Revenue)
			reports.GET("/summary", repc.TodaySummary)
		}

		api.POST("/snapshot", bc.SaveSnapshot)
	}

	return r
}
