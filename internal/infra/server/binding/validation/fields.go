package validation

import (
	"github.com/gin-gonic/gin/binding"

	"github.com/duelboard/duelboard/internal/domain/content"

	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
)

func SetUpValidators() {
	log.Info().Msg("Setting up custom validators")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation(ContentIdValidatorTag, ContentIdValidator)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to set up content id validator")
		}
	}
}

var ContentIdValidatorTag = "contentId"
var ContentIdValidator validator.Func = func(fl validator.FieldLevel) bool {
	contentId, ok := fl.Field().Interface().(content.Id)
	if ok {
		if _, err := content.IdFromString(string(contentId)); err != nil {
			return false
		}
	}
	return true
}
