package domain

const (
	ClientEntity  = "Client"
	ClientKeyName = "cpf"
)

// ClientSortFields — поля, по которым разрешена сортировка списка клиентов.
var ClientSortFields = []string{"id", "name", "cpf", "tel", "email", "address", "addressNumber", "city", "estate"}

// Client описывает клиента. Уникальны cpf и email.
type Client struct {
	ID            string `json:"id" example:"507f1f77bcf86cd799439011"`
	Name          string `json:"name" validate:"required,max=50" example:"João Silva"`
	CPF           string `json:"cpf" validate:"required" example:"12345678900"`
	Tel           *int64 `json:"tel" validate:"required" example:"11987654321"`
	Email         string `json:"email" validate:"required,max=50,email_pattern" example:"joao.silva@example.com"`
	Address       string `json:"address" validate:"required,max=50" example:"Rua das Flores, 123"`
	AddressNumber *int32 `json:"addressNumber" validate:"required" example:"123"`
	City          string `json:"city" validate:"required,max=50" example:"São Paulo"`
	Estate        string `json:"estate" validate:"required,max=50" example:"SP"`
}

// Violations возвращает все нарушения ограничений полей клиента.
func (c *Client) Violations() []Violation {
	return violationsOf(c)
}

// Validate возвращает *e.ValidationError, если клиент нарушает хотя бы одно ограничение.
func (c *Client) Validate() error {
	return validationError(c.Violations())
}

// ApplyChanges переносит изменяемые поля из other. ID и CPF не меняются.
func (c *Client) ApplyChanges(other *Client) {
	c.Name = other.Name
	c.Tel = other.Tel
	c.Email = other.Email
	c.Address = other.Address
	c.AddressNumber = other.AddressNumber
	c.City = other.City
	c.Estate = other.Estate
}
