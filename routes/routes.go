// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrarifat21/bashabari-server-side/controllers"
	"github.com/mrarifat21/bashabari-server-side/middleware"
	"github.com/mrarifat21/bashabari-server-side/models"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	propertyController *controllers.PropertyController,
	listingController *controllers.ListingController,
	wishlistController *controllers.WishlistController,
	offerController *controllers.OfferController,
	reviewController *controllers.ReviewController,
) {
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	agentOrAdmin := middleware.RequireRole(models.RoleAgent, models.RoleAdmin)

	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bashabari backend is running"))
	}).Methods("GET")

	// Public routes
	router.HandleFunc("/jwt", authController.IssueToken).Methods("POST")
	router.HandleFunc("/users", userController.Register).Methods("POST")
	router.HandleFunc("/properties", propertyController.ListProperties).Methods("GET")
	router.HandleFunc("/properties/advertised", listingController.GetAdvertised).Methods("GET")
	router.HandleFunc("/verified-properties-by-agents", listingController.GetVerifiedByAgents).Methods("GET")
	router.HandleFunc("/reviews/latest", reviewController.ListLatest).Methods("GET")
	router.HandleFunc("/reviews/property/{propertyId}", reviewController.ListByProperty).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(adminOnly)
	admin.HandleFunc("/users", userController.ListUsers).Methods("GET")
	admin.HandleFunc("/users/role/{id}", userController.UpdateRole).Methods("PATCH")
	admin.HandleFunc("/users/fraud/{id}", userController.FlagFraud).Methods("PATCH")
	admin.HandleFunc("/users/{id}", userController.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/properties/status/{id}", propertyController.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/advertise/{id}", propertyController.Advertise).Methods("PATCH")
	admin.HandleFunc("/admin/reviews", reviewController.ListAll).Methods("GET")
	admin.HandleFunc("/reviews/{id}", reviewController.DeleteReview).Methods("DELETE")

	// Agent routes
	agent := router.PathPrefix("/").Subrouter()
	agent.Use(middleware.AuthMiddleware)
	agent.Use(agentOrAdmin)
	agent.HandleFunc("/properties", propertyController.CreateProperty).Methods("POST")
	agent.HandleFunc("/properties/agent", propertyController.ListByAgent).Methods("GET")
	agent.HandleFunc("/properties/{id}", propertyController.UpdateProperty).Methods("PATCH")
	agent.HandleFunc("/properties/{id}", propertyController.DeleteProperty).Methods("DELETE")
	agent.HandleFunc("/offers/agent", offerController.ListForAgent).Methods("GET")
	agent.HandleFunc("/offers/{id}", offerController.UpdateOfferStatus).Methods("PATCH")

	// Authenticated routes, any role
	authed := router.PathPrefix("/").Subrouter()
	authed.Use(middleware.AuthMiddleware)
	authed.HandleFunc("/users/{email}/role", userController.GetRole).Methods("GET")
	authed.HandleFunc("/users/{email}", userController.GetUser).Methods("GET")
	authed.HandleFunc("/wishlist", wishlistController.AddToWishlist).Methods("POST")
	authed.HandleFunc("/wishlist", wishlistController.ListWishlist).Methods("GET")
	authed.HandleFunc("/wishlist/check", wishlistController.CheckWishlist).Methods("GET")
	authed.HandleFunc("/wishlist/{id}", wishlistController.GetWishlistItem).Methods("GET")
	authed.HandleFunc("/wishlist/{id}", wishlistController.RemoveFromWishlist).Methods("DELETE")
	authed.HandleFunc("/offers", offerController.SubmitOffer).Methods("POST")
	authed.HandleFunc("/offers/buyer", offerController.ListForBuyer).Methods("GET")
	authed.HandleFunc("/offers/{id}", offerController.GetOffer).Methods("GET")
	authed.HandleFunc("/reviews", reviewController.AddReview).Methods("POST")
	authed.HandleFunc("/reviews/user", reviewController.ListByUser).Methods("GET")

	// Public property detail, registered after the more specific paths
	router.HandleFunc("/properties/{id}", propertyController.GetProperty).Methods("GET")
}
