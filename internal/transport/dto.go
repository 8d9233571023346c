package transport

// Envelope is the uniform response body: success flag, optional human
// message, optional payload, optional field-level validation errors.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    uint    `json:"quantity"    validate:"gte=0"`
	Description string  `json:"description"`
}

type LoginData struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}
