package http

import (
	"net/http"

	"boardcamp-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires every endpoint of the rental backend. The returned
// handler carries request logging and permissive CORS, matching how the
// service is consumed by browser frontends.
func NewRouter(rentals service.RentalService, games service.GameService, customers service.CustomerService) http.Handler {
	router := mux.NewRouter()

	rentalHandler := NewRentalHandler(rentals)
	router.HandleFunc("/rentals", rentalHandler.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/rentals", rentalHandler.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/rentals/{id}/return", rentalHandler.HandleReturn).Methods(http.MethodPost)
	router.HandleFunc("/rentals/{id}", rentalHandler.HandleDelete).Methods(http.MethodDelete)

	gameHandler := NewGameHandler(games)
	router.HandleFunc("/games", gameHandler.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}", gameHandler.HandleGet).Methods(http.MethodGet)

	customerHandler := NewCustomerHandler(customers)
	router.HandleFunc("/customers", customerHandler.HandleCreate).Methods(http.MethodPost)
	router.HandleFunc("/customers", customerHandler.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/customers/{id}", customerHandler.HandleGet).Methods(http.MethodGet)
	router.HandleFunc("/customers/{id}", customerHandler.HandleUpdate).Methods(http.MethodPut)

	return RequestLogging(cors.AllowAll().Handler(router))
}
