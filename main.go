// main.go
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mrarifat21/bashabari-server-side/controllers"
	"github.com/mrarifat21/bashabari-server-side/routes"
	"github.com/mrarifat21/bashabari-server-side/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Proceeding with environment variables.")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logrus.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	// Optional collaborators: homepage cache, buyer mail, identity provider
	utils.InitRedis()
	emailService := utils.NewEmailService()
	identityService := utils.NewIdentityService()

	// Initialize controllers
	authController := controllers.NewAuthController(client)
	userController := controllers.NewUserController(client, identityService)
	propertyController := controllers.NewPropertyController(client)
	listingController := controllers.NewListingController(client)
	wishlistController := controllers.NewWishlistController(client)
	offerController := controllers.NewOfferController(client, emailService)
	reviewController := controllers.NewReviewController(client)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		authController,
		userController,
		propertyController,
		listingController,
		wishlistController,
		offerController,
		reviewController,
	)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logrus.WithField("port", port).Info("Server is running")
	logrus.Fatal(http.ListenAndServe(":"+port, corsHandler(router)))
}

// corsHandler mirrors the permissive CORS the front-end expects.
func corsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
