package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airtickets/api"
	"github.com/Domenick1991/airtickets/config"
	"github.com/Domenick1991/airtickets/internal/auth"
	"github.com/Domenick1991/airtickets/internal/service/booking"
	"github.com/Domenick1991/airtickets/internal/service/flights"
	"github.com/Domenick1991/airtickets/internal/service/users"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	userSvc users.UserUseCase,
	tokens *auth.Manager,
) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(flightSvc, bookingSvc, userSvc, tokens),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	userSvc users.UserUseCase,
	tokens *auth.Manager,
) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")

	api.NewFlightHandler(flightSvc).Register(v1)

	bookingsGroup := v1.Group("/bookings", api.RequireAuth(tokens))
	api.NewBookingHandler(bookingSvc).Register(bookingsGroup)

	usersPublic := v1.Group("/users")
	usersProtected := v1.Group("/users", api.RequireAuth(tokens))
	api.NewUserHandler(userSvc, tokens).Register(usersPublic, usersProtected)

	return router
}
