package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler is the request layer in front of the rental core: it
// decodes and validates raw input, normalizes the current time to a
// calendar date, and maps domain errors to status codes. The core only
// ever sees typed, validated values.
type RentalHandler struct {
	rentals service.RentalService
	now     func() time.Time
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals, now: time.Now}
}

type createRentalRequest struct {
	CustomerID int32 `json:"customer_id"`
	GameID     int32 `json:"game_id"`
	DaysRented int32 `json:"days_rented"`
}

// today normalizes the wall clock to a yyyy-mm-dd calendar date. The
// core works in calendar dates only.
func (h *RentalHandler) today() string {
	return h.now().Format("2006-01-02")
}

func (h *RentalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentals.Create(r.Context(), req.CustomerID, req.GameID, req.DaysRented, h.today())
	if err != nil {
		// A dangling customer or game id in the body is a caller error,
		// not a missing resource at this path.
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rentals.Return(r.Context(), id, h.today()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (h *RentalHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rentals.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (h *RentalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalWithNames{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// pathID parses the {id} path variable, replying 404 on garbage since
// no resource can live at such a path.
func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return 0, false
	}
	return int32(id), true
}
