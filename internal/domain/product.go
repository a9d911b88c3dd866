package domain

const (
	ProductEntity  = "Product"
	ProductKeyName = "code"
)

// ProductSortFields — поля, по которым разрешена сортировка списка товаров.
var ProductSortFields = []string{"id", "code", "name", "description", "value"}

// Product описывает товар каталога. Уникален code.
type Product struct {
	ID          string `json:"id" example:"507f1f77bcf86cd799439011"`
	Code        string `json:"code" validate:"required" example:"IPH16"`
	Name        string `json:"name" validate:"required,max=50" example:"Apple IPhone 16"`
	Description string `json:"description" validate:"omitempty,max=300" example:"iPhone 16. Novo Controle da Câmera, câmera Fusion de 48 MP."`
	Value       Money  `json:"value" validate:"money_positive,money_digits" swaggertype:"string" example:"5500.00"`
}

// Violations возвращает все нарушения ограничений полей товара.
func (p *Product) Violations() []Violation {
	return violationsOf(p)
}

// Validate возвращает *e.ValidationError, если товар нарушает хотя бы одно ограничение.
func (p *Product) Validate() error {
	return validationError(p.Violations())
}

// ApplyChanges переносит изменяемые поля из other. ID и Code не меняются.
func (p *Product) ApplyChanges(other *Product) {
	p.Name = other.Name
	p.Description = other.Description
	p.Value = other.Value
}
