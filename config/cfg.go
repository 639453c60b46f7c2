package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

type (
	// IndentProfileConfig selects a built-in column map and applies optional
	// point overrides on top of it, mirroring layout.Profile's fields.
	IndentProfileConfig struct {
		Base ProfileKind `yaml:"base" validate:"gte=0"`

		// Resolution overrides the points-per-inch factor (default 72) the
		// base profile's inch-denominated fields are converted at.
		Resolution float64 `yaml:"resolution,omitempty" validate:"omitempty,gt=0"`

		Left          float64 `yaml:"left,omitempty" validate:"omitempty,gte=0"`
		Right         float64 `yaml:"right,omitempty" validate:"omitempty,gte=0"`
		Top           float64 `yaml:"top,omitempty" validate:"omitempty,gte=0"`
		Bottom        float64 `yaml:"bottom,omitempty" validate:"omitempty,gte=0"`
		Action        float64 `yaml:"action,omitempty" validate:"omitempty,gte=0"`
		Character     float64 `yaml:"character,omitempty" validate:"omitempty,gte=0"`
		Dialogue      float64 `yaml:"dialogue,omitempty" validate:"omitempty,gte=0"`
		Parenthetical float64 `yaml:"parenthetical,omitempty" validate:"omitempty,gte=0"`

		DDLeftCharacter  float64 `yaml:"dd_left_character,omitempty" validate:"omitempty,gte=0"`
		DDRightCharacter float64 `yaml:"dd_right_character,omitempty" validate:"omitempty,gte=0"`
	}

	// VocabularyConfig overrides the default English vocabulary.
	VocabularyConfig struct {
		RevisionMarker string   `yaml:"revision_marker" validate:"gt=0"`
		MoreContinued  []string `yaml:"more_continued,omitempty" validate:"dive,required"`

		EnvironmentInt   []string `yaml:"environment_int,omitempty" validate:"dive,required"`
		EnvironmentExt   []string `yaml:"environment_ext,omitempty" validate:"dive,required"`
		EnvironmentCombo []string `yaml:"environment_combo,omitempty" validate:"dive,required"`

		TimeOfDayDay       []string `yaml:"time_of_day_day,omitempty" validate:"dive,required"`
		TimeOfDayNight     []string `yaml:"time_of_day_night,omitempty" validate:"dive,required"`
		TimeOfDayMorning   []string `yaml:"time_of_day_morning,omitempty" validate:"dive,required"`
		TimeOfDayEvening   []string `yaml:"time_of_day_evening,omitempty" validate:"dive,required"`
		TimeOfDayAfternoon []string `yaml:"time_of_day_afternoon,omitempty" validate:"dive,required"`
	}

	// Config is the top-level screenplaydoc configuration: indent profile
	// selection/overrides, vocabulary overrides, and logging settings.
	Config struct {
		Version   int                  `yaml:"version" validate:"eq=1"`
		Profile   IndentProfileConfig  `yaml:"indent_profile"`
		Vocabulary VocabularyConfig     `yaml:"vocabulary"`
		Logging   LoggingConfig        `yaml:"logging"`
	}
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given
// path, superimposing its values over the expanded default template, and
// validates the result. An empty path returns pure defaults.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates the default configuration from the embedded template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump marshals cfg back to YAML, for the CLI's "dumpconfig"-equivalent
// debugging support.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
