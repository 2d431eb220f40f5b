package domain

// Customer is a registered renter. CPF is the tax identifier and is
// unique across customers. Birthday is a yyyy-mm-dd calendar date.
type Customer struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
}
