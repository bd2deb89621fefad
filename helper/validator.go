package helper

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// NewHTTPHelper builds the helper with its validator and english translator.
func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

// BindAndValidate decodes the request body into obj and validates it. On
// failure the error response has already been written and false is returned.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, obj interface{}) bool {
	// An absent body means an empty input object for procedures whose
	// parameters are all optional.
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		u.SendBadRequest(c, "invalid request body: "+err.Error(), u.EmptyJsonMap())
		return false
	}

	if err := u.Validate.Struct(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		return false
	}

	return true
}
