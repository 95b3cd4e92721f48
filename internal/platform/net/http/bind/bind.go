// Package bind decodes request bodies and validates them with english messages
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
	"github.com/FFlyyy/bot/internal/platform/logger"
)

// MaxBody caps how much of a request body ParseJSON reads
const MaxBody = 1 << 20

var snowflakeRe = regexp.MustCompile(`^[0-9]{15,20}$`)

type engine struct {
	v     *validator.Validate
	trans ut.Translator
}

// shortMessages replace the library's wordier defaults
var shortMessages = map[string]string{
	"min":       "{0} must be at least {1}",
	"max":       "{0} must be at most {1}",
	"snowflake": "{0} must be a discord snowflake id",
}

var get = sync.OnceValue(func() *engine {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterValidation("snowflake", func(fl validator.FieldLevel) bool {
		return snowflakeRe.MatchString(fl.Field().String())
	})

	for tag, text := range shortMessages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(fe.Tag(), fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &engine{v: v, trans: trans}
})

// ParseJSON decodes one JSON document into T and validates it
//
// Unknown fields, trailing data, empty bodies and bodies over MaxBody are JSON errors.
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, perr.JSONErrf("empty body")
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, Validate(dst)
}

// Validate runs struct validation on v
//
// Handlers that build inputs from query strings call this directly.
func Validate(v any) error {
	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Get().Error().Err(err).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(get().trans)), fe.Field())
}
