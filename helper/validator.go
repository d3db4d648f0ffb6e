package helper

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

	validatorOnce sync.Once
	translator    ut.Translator
)

// setupValidator configures gin's binding engine once: JSON field names in
// errors, the slug rule and English messages.
func setupValidator() ut.Translator {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		v.SetTagName("binding")

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return Underscore(fld.Name)
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, translator)
		_ = v.RegisterTranslation("slug", translator,
			func(t ut.Translator) error {
				return t.Add("slug", "{0} may only contain letters, digits, hyphens and underscores", true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T("slug", fe.Field())
				return msg
			},
		)
	})
	return translator
}
