package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campusrent/internal/config"
	"campusrent/internal/database"
	"campusrent/internal/middleware"
	"campusrent/internal/modules/auth"
	"campusrent/internal/modules/favorite"
	"campusrent/internal/modules/listing"
	"campusrent/internal/modules/rental"
	jwtsvc "campusrent/internal/pkg/jwt"
	"campusrent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	listingService := listing.NewService(listingRepo)
	listingHandler := listing.NewHandler(listingService)

	rentalService := rental.NewService(rentalRepo, listingRepo, userRepo)
	rentalHandler := rental.NewHandler(rentalService)

	favoriteService := favorite.NewService(favoriteRepo, listingRepo)
	favoriteHandler := favorite.NewHandler(favoriteService, listingService)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			listingHandler.RegisterRoutes(protected, middleware.OwnerOnly())
			rentalHandler.RegisterRoutes(protected, middleware.OwnerOnly())
			favoriteHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
