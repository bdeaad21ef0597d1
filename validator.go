package passgen

import (
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_trans "github.com/go-playground/validator/v10/translations/en"
	zh_trans "github.com/go-playground/validator/v10/translations/zh"
	"github.com/pkg/errors"
)

var (
	validatorMu sync.Mutex
	validate    *validator.Validate
	trans       ut.Translator
)

// policy tag messages per locale
var policyMessages = map[string]string{
	"en": "{0} must be one of [{1}]",
	"zh": "{0}必须是[{1}]中的一个",
}

// NewValidator installs the validator used by LoadConfig. locale selects the
// message language, "en" (default) or "zh".
func NewValidator(locale ...string) {
	defLocale := "en"
	if len(locale) > 0 {
		defLocale = locale[0]
	}

	v, t := newValidator(defLocale)

	validatorMu.Lock()
	validate, trans = v, t
	validatorMu.Unlock()
}

func newValidator(locale string) (*validator.Validate, ut.Translator) {
	enTrans := en.New()                      // English converter
	zhTrans := zh.New()                      // Chinese converter
	uni := ut.New(enTrans, enTrans, zhTrans) // Universal converter

	if _, ok := policyMessages[locale]; !ok {
		locale = "en"
	}

	v := validator.New()
	_ = v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		return Policy(fl.Field().String()).Valid()
	})

	// Get the converter of the corresponding language
	t, _ := uni.GetTranslator(locale)

	switch locale {
	case "zh":
		_ = zh_trans.RegisterDefaultTranslations(v, t)
	default:
		_ = en_trans.RegisterDefaultTranslations(v, t)
	}

	_ = v.RegisterTranslation("policy", t, func(t ut.Translator) error {
		return t.Add("policy", policyMessages[locale], true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T("policy", fe.Field(), strings.Join(policyNames(), " "))
		return msg
	})

	return v, t
}

func current() (*validator.Validate, ut.Translator) {
	validatorMu.Lock()
	defer validatorMu.Unlock()
	if validate == nil {
		validate, trans = newValidator("en")
	}
	return validate, trans
}

func GetValidate() *validator.Validate {
	v, _ := current()
	return v
}

// Validate checks data against its validate tags and returns the first
// failure as a translated message.
func Validate(data interface{}) error {
	v, t := current()
	err := v.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	return errors.New(errs[0].Translate(t))
}
