// Package v1 exposes the chat and travel search endpoints.
package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/destinai/destinai/agent"
	logcontext "github.com/destinai/destinai/context"
	"github.com/destinai/destinai/log"
	"github.com/destinai/destinai/search"
	"github.com/destinai/destinai/travel"
)

// Orchestrator is the conversational surface behind POST /chat.
type Orchestrator interface {
	HandleMessage(ctx context.Context, history []agent.Turn, userText string) (string, []agent.Turn)
}

// Handler serves the v1 API routes.
type Handler struct {
	Orchestrator Orchestrator
	Flights      *search.FlightService
	Hotels       *search.HotelService
	Itinerary    *search.ItineraryService
}

// Register mounts all v1 routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/chat", h.Chat)
	mux.HandleFunc("/find_flights", h.FindFlights)
	mux.HandleFunc("/find_hotels", h.FindHotels)
	mux.HandleFunc("/find_places", h.FindPlaces)
	mux.HandleFunc("/", h.Root)
}

// Root reports liveness.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "DestinAI backend is running."})
}

// ChatRequest is the body of POST /chat. History is round-tripped by
// the client; the server keeps no session state.
type ChatRequest struct {
	Message string       `json:"message"`
	History []agent.Turn `json:"history,omitempty"`
}

// ChatResponse carries the reply and the updated history.
type ChatResponse struct {
	Response string       `json:"response"`
	History  []agent.Turn `json:"history,omitempty"`
}

// Chat runs one orchestration step.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx := logcontext.WithRequestID(r.Context(), logcontext.NewRequestID())
	log.Infof(ctx, "chat message received (%d prior turns)", len(req.History))

	reply, history := h.Orchestrator.HandleMessage(ctx, req.History, req.Message)
	writeJSON(w, http.StatusOK, ChatResponse{Response: reply, History: history})
}

// FindFlights serves POST /find_flights.
func (h *Handler) FindFlights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var q travel.FlightQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if q.Origin == "" || q.Destination == "" {
		http.Error(w, "origin and destination are required", http.StatusBadRequest)
		return
	}

	res, err := h.Flights.SearchFlights(r.Context(), q)
	if err != nil {
		log.Errorf(r.Context(), "flight search failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// FindHotels serves POST /find_hotels.
func (h *Handler) FindHotels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var q travel.HotelQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if q.Destination == "" {
		http.Error(w, "destination is required", http.StatusBadRequest)
		return
	}

	res, err := h.Hotels.SearchHotels(r.Context(), q)
	if err != nil {
		log.Errorf(r.Context(), "hotel search failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// FindPlaces serves GET /find_places.
func (h *Handler) FindPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := r.URL.Query()
	city := params.Get("city")
	if city == "" {
		http.Error(w, "city is required", http.StatusBadRequest)
		return
	}
	days, err := strconv.Atoi(params.Get("days"))
	if err != nil {
		http.Error(w, "days must be an integer", http.StatusBadRequest)
		return
	}

	q := travel.ItineraryQuery{
		City:             city,
		Days:             days,
		AttractionsLimit: intParam(params.Get("attractions_limit")),
		RestaurantsLimit: intParam(params.Get("restaurants_limit")),
	}

	res, err := h.Itinerary.SearchItinerary(r.Context(), q)
	if err != nil {
		log.Errorf(r.Context(), "itinerary search failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
