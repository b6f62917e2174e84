// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var stockSymbolRegex = regexp.MustCompile(`^[A-Za-z.]{1,5}$`)

// validCurrencies are the display currencies a profile may pick.
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "BDT": true,
}

var once sync.Once

// Register registers all custom validators with the Gin binding engine.
// decimal.Decimal fields are validated as float64, so the stock numeric tags
// (gt, gte, max) apply to money fields directly.
func Register() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
			_ = v.RegisterValidation("currency", validateCurrency)
			_ = v.RegisterValidation("stock_symbol", validateStockSymbol)
		}
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateStockSymbol(fl validator.FieldLevel) bool {
	return stockSymbolRegex.MatchString(fl.Field().String())
}
