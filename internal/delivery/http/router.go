package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdesk/internal/delivery/http/controllers"
)

// NewRouter wires the event endpoints onto a ServeMux.
func NewRouter(eventController *controllers.EventController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{id}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{id}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", eventController.DeleteEvent)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
