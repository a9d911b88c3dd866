package domain

import (
	"fmt"

	"github.com/DRSN-tech/online-sales/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	moneyMaxIntegerDigits  = 10
	moneyMaxFractionDigits = 2

	// Границы входного литерала: всё, что за ними, отклоняется до разбора значения.
	moneyMaxLiteralLength = 64
	moneyMaxExponent      = 32
)

// moneyUpperBound — наименьшее значение с 11 цифрами в целой части.
var moneyUpperBound = decimal.New(1, moneyMaxIntegerDigits)

// Money — денежное значение с фиксированной точкой.
// В JSON всегда сериализуется строкой с двумя знаками после запятой ("5500.00").
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// ParseMoney разбирает строку вида "5500.00" или "12".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}

	return NewMoney(d), nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(moneyMaxFractionDigits) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число. Слишком длинные литералы
// и экспоненты вне [-32, 32] отклоняются как некорректное тело запроса.
func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > moneyMaxLiteralLength {
		return e.Wrap(fmt.Sprintf("money literal longer than %d bytes", moneyMaxLiteralLength), e.ErrInvalidRequestBody)
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidRequestBody)
	}

	if exp := d.Exponent(); exp > moneyMaxExponent || exp < -moneyMaxExponent {
		return e.Wrap(fmt.Sprintf("money exponent %d out of range", exp), e.ErrInvalidRequestBody)
	}

	m.Decimal = d
	return nil
}

// IsPositive сообщает, что значение строго больше нуля.
func (m Money) IsPositive() bool {
	return m.GreaterThan(decimal.Zero)
}

// HasValidDigits проверяет, что целая часть содержит не более 10 цифр,
// а дробная — не более 2 значащих цифр.
func (m Money) HasValidDigits() bool {
	// Сравнение с далёкой экспонентой требует масштабирования на 10^|exp|.
	exp := m.Exponent()
	if exp > moneyMaxIntegerDigits || exp < -moneyMaxExponent {
		return false
	}

	if exp < -moneyMaxFractionDigits && !m.Equal(m.Truncate(moneyMaxFractionDigits)) {
		return false
	}

	return m.Abs().LessThan(moneyUpperBound)
}
