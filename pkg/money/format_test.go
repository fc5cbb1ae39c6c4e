package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/boutique-analytics/pkg/money"
)

func TestAmount_SeparadorDeMiles(t *testing.T) {
	f := money.NewFormatter("DA", "")

	assert.Equal(t, "1,500 DA", f.Amount(decimal.NewFromInt(1500)))
	assert.Equal(t, "85,000 DA", f.Amount(decimal.RequireFromString("84999.50")))
	assert.Equal(t, "0 DA", f.Amount(decimal.Zero))
}

func TestAmount_RedondeoMitadAlPar(t *testing.T) {
	f := money.NewFormatter("DA", "")

	assert.Equal(t, "1,250 DA", f.Amount(decimal.RequireFromString("1250.5")))
	assert.Equal(t, "1,252 DA", f.Amount(decimal.RequireFromString("1251.5")))
	assert.Equal(t, "1,251 DA", f.Amount(decimal.RequireFromString("1250.51")))
	assert.Equal(t, "-2 DA", f.Amount(decimal.RequireFromString("-2.5")))
}

func TestAmount_SinMoneda(t *testing.T) {
	f := money.NewFormatter("", "")
	assert.Equal(t, "1,234,567", f.Amount(decimal.NewFromInt(1234567)))
}

func TestUnits(t *testing.T) {
	f := money.NewFormatter("DA", "")
	assert.Equal(t, "12,000 unités", f.Units(12000, "unités"))
	assert.Equal(t, "3", f.Units(3, ""))
}
