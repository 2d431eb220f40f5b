package http

import (
	"encoding/json"
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
}

func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	customer := &domain.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: req.Birthday,
	}
	if err := h.customers.CreateCustomer(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	customer := &domain.Customer{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: req.Birthday,
	}
	if err := h.customers.UpdateCustomer(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}
