// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"time"

	"equipment-admin/pkg/constants"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations реєструє всі кастомні правила валідації
// у переданому екземплярі валідатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("ua_mobile", isUkrainianMobile); err != nil {
		return err
	}
	if err := v.RegisterValidation("dmy_date", isDisplayDate); err != nil {
		return err
	}
	return nil
}

// isUkrainianMobile приймає номери виду +380XXXXXXXXX або 0XXXXXXXXX.
func isUkrainianMobile(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^(\+380\d{9}|0\d{9})$`)
	return re.MatchString(fl.Field().String())
}

// isDisplayDate перевіряє формат дд.мм.рррр.
func isDisplayDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constants.DateLayout, fl.Field().String())
	return err == nil
}
