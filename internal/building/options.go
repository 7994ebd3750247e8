package building

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
)

// ErrInvalidOptions is wrapped by every error Generate returns.
var ErrInvalidOptions = errors.New("building: invalid options")

// LotSize is an explicit lot in tiles.
type LotSize struct {
	Width  int `yaml:"width" validate:"gt=0,lte=200"`
	Height int `yaml:"height" validate:"gt=0,lte=200"`
}

// Options are the inputs of one generation call. Nil optional fields are
// derived from Seed. Stories may be 1 to 5; archetypes cap it further.
type Options struct {
	BuildingType catalog.BuildingType `yaml:"building_type" validate:"building_type"`
	SocialClass  catalog.SocialClass  `yaml:"social_class" validate:"social_class"`
	Seed         int64                `yaml:"seed"`

	LotSize           *LotSize           `yaml:"lot_size,omitempty"`
	Climate           *catalog.Climate   `yaml:"climate,omitempty" validate:"omitempty,climate"`
	Age               *int               `yaml:"age,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Condition         *catalog.Condition `yaml:"condition,omitempty" validate:"omitempty,condition"`
	Stories           *int               `yaml:"stories,omitempty" validate:"omitempty,gte=1,lte=5"`
	Basement          *bool              `yaml:"basement,omitempty"`
	Season            *catalog.Season    `yaml:"season,omitempty" validate:"omitempty,season"`
	CulturalInfluence string             `yaml:"cultural_influence,omitempty" validate:"max=64"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	enums := map[string]func(int64) bool{
		"building_type": func(n int64) bool { return catalog.BuildingType(n).Valid() },
		"social_class":  func(n int64) bool { return catalog.SocialClass(n).Valid() },
		"climate":       func(n int64) bool { return catalog.Climate(n).Valid() },
		"condition":     func(n int64) bool { return catalog.Condition(n).Valid() },
		"season":        func(n int64) bool { return catalog.Season(n).Valid() },
	}
	for tag, valid := range enums {
		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().Int())
		})
	}
	return v
}

// Validate checks o and reports every bad field in one error.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), validationMessage(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "building_type", "social_class", "climate", "condition", "season":
		return fmt.Sprintf("%v is not a known %s", fe.Value(), strings.ReplaceAll(fe.Tag(), "_", " "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
