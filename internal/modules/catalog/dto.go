package catalog

type CreateBranchRequest struct {
	Code    string `json:"code" binding:"required,max=16"`
	Name    string `json:"name" binding:"required,max=120"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}

type CreateTypeRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description"`
}

type RegisterClientRequest struct {
	ClientNumber string `json:"client_number" validate:"required,max=32"`
	FullName     string `json:"full_name" validate:"required,max=160"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
}
