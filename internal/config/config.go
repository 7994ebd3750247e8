package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/hearthplan/internal/catalog"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GeneratorConfig holds the settings shared by the command line tools. It
// lives in the same YAML file as the logging block.
type GeneratorConfig struct {
	Output     OutputConfig     `yaml:"output"`
	Compliance ComplianceConfig `yaml:"compliance"`
	Preview    PreviewConfig    `yaml:"preview"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
}

// OutputConfig controls where generated plans are written.
type OutputConfig struct {
	Directory string `yaml:"directory" validate:"required"`

	// FilePattern names each plan file. {type}, {class} and {seed} are
	// replaced with the plan's values.
	FilePattern string `yaml:"file_pattern" validate:"required,contains={seed}"`

	// Fingerprint adds the plan digest to the file header.
	Fingerprint bool `yaml:"fingerprint"`
}

// ComplianceConfig controls the building code pass after generation.
type ComplianceConfig struct {
	AutoFix         bool `yaml:"auto_fix"`
	PrintReport     bool `yaml:"print_report"`
	FailOnMandatory bool `yaml:"fail_on_mandatory"`
}

// PreviewConfig holds the default overlays for ASCII maps.
type PreviewConfig struct {
	ShowFurniture bool `yaml:"show_furniture"`
	ShowLight     bool `yaml:"show_light"`
}

// DefaultsConfig is used when a flag is not given on the command line.
type DefaultsConfig struct {
	BuildingType catalog.BuildingType `yaml:"building_type" validate:"known"`
	SocialClass  catalog.SocialClass  `yaml:"social_class" validate:"known"`
}

// DefaultConfig returns a GeneratorConfig that writes common small houses
// to ./plans.
func DefaultConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Output: OutputConfig{
			Directory:   "plans",
			FilePattern: "{type}_{class}_{seed}.yaml",
			Fingerprint: true,
		},
		Compliance: ComplianceConfig{
			PrintReport: true,
		},
		Preview: PreviewConfig{
			ShowFurniture: true,
		},
		Defaults: DefaultsConfig{
			BuildingType: catalog.HouseSmall,
			SocialClass:  catalog.Common,
		},
	}
}

// LoadConfig loads generator configuration from a YAML file. A missing file
// yields the defaults; a file that cannot be parsed or fails validation is
// an error.
func LoadConfig(path string) (*GeneratorConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	})
	return v
}

// Validate checks the configuration against its field rules.
func (c *GeneratorConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "contains":
			msg = "must contain " + fe.Param()
		case "known":
			msg = fmt.Sprintf("%v is not a known value", fe.Value())
		default:
			msg = "failed " + fe.Tag()
		}
		msgs = append(msgs, fe.Namespace()+": "+msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// PathFor returns the output file for one generated plan.
func (o OutputConfig) PathFor(b catalog.BuildingType, c catalog.SocialClass, seed int64) string {
	name := strings.NewReplacer(
		"{type}", b.String(),
		"{class}", c.String(),
		"{seed}", strconv.FormatInt(seed, 10),
	).Replace(o.FilePattern)
	return filepath.Join(o.Directory, name)
}
