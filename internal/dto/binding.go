package dto

import (
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// "amount" accepts decimal strings with at most two fractional digits.
		// Parsing happens again in the services; this just fails fast at bind time.
		_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseAmount(fl.Field().String())
			return err == nil
		})
	}
}
