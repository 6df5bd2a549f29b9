package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email"    validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	IsAdmin    bool   `json:"is_admin"`
	IsSupplier bool   `json:"is_supplier"`
	IsCustomer bool   `json:"is_customer"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is the credential exchange result. TokenType is always
// "bearer".
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Catalog ---

type categoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required"`
}

// --- Admin ---

type toggleResponse struct {
	Detail string `json:"detail"`
}
