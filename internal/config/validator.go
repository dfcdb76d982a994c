package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("yaml_file", isYAMLFilePath); err != nil {
		return nil, nil, fmt.Errorf("failed to register yaml_file validation: %w", err)
	}
	if err := validate.RegisterTranslation("yaml_file", trans, func(ut ut.Translator) error {
		return ut.Add("yaml_file", "{0} must be a path ending with .yml or .yaml", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("yaml_file", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register yaml_file translation: %w", err)
	}

	return validate, trans, nil
}

func isYAMLFilePath(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
