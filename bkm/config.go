package bkm

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is everything needed to evaluate cross sections at one kinematic
// point. Build it directly or load it from YAML with LoadConfig.
type Config struct {
	Kinematics    KinematicInputs
	CFFs          CFFInputs
	UsingWW       bool // evaluate twist-three CFFs with the Wandzura–Wilczek relations
	Contributions Contributions

	// TrentoConvention maps user angles φ to the BMK angle π - φ.
	TrentoConvention bool

	// Default spin state used by callers that take it from the config.
	LeptonHelicity     float64
	TargetPolarization float64
}

// DefaultConfig returns a Config with every contribution enabled and the
// Trento angle convention on. Kinematics and CFFs are left zero.
func DefaultConfig() Config {
	return Config{
		Contributions:    AllContributions(),
		TrentoConvention: true,
	}
}

// Validate checks the kinematic inputs, the CFFs, the default spin state
// and that at least one contribution is enabled.
func (c Config) Validate() error {
	if err := c.Kinematics.Validate(); err != nil {
		return err
	}
	if err := c.CFFs.Validate(); err != nil {
		return err
	}
	if err := ValidateHelicity(c.LeptonHelicity); err != nil {
		return fmt.Errorf("lepton_helicity: %w", err)
	}
	if err := ValidatePolarization(c.TargetPolarization); err != nil {
		return fmt.Errorf("target_polarization: %w", err)
	}
	if !c.Contributions.BH && !c.Contributions.DVCS && !c.Contributions.Interference {
		return fmt.Errorf("contributions: at least one of bh, dvcs, interference must be enabled")
	}
	return nil
}

// complexYAML is a complex number as it appears in config files.
type complexYAML struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (c complexYAML) value() complex128 { return complex(c.Re, c.Im) }

type cffYAML struct {
	H      complexYAML `yaml:"h"`
	HTilde complexYAML `yaml:"h_tilde"`
	E      complexYAML `yaml:"e"`
	ETilde complexYAML `yaml:"e_tilde"`
}

type contributionsYAML struct {
	BH           *bool `yaml:"bh"`
	DVCS         *bool `yaml:"dvcs"`
	Interference *bool `yaml:"interference"`
}

// configYAML mirrors the config file layout. Optional sections are pointers
// so that absent keys keep their defaults.
type configYAML struct {
	Kinematics         KinematicInputs    `yaml:"kinematics"`
	CFFs               cffYAML            `yaml:"cffs"`
	UsingWW            bool               `yaml:"using_ww"`
	Contributions      *contributionsYAML `yaml:"contributions"`
	TrentoConvention   *bool              `yaml:"trento_convention"`
	LeptonHelicity     float64            `yaml:"lepton_helicity"`
	TargetPolarization float64            `yaml:"target_polarization"`
}

// ParseConfig decodes a YAML configuration and validates it. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	var raw configYAML
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Kinematics = raw.Kinematics
	cfg.CFFs = CFFInputs{
		H:      raw.CFFs.H.value(),
		HTilde: raw.CFFs.HTilde.value(),
		E:      raw.CFFs.E.value(),
		ETilde: raw.CFFs.ETilde.value(),
	}
	cfg.UsingWW = raw.UsingWW
	cfg.LeptonHelicity = raw.LeptonHelicity
	cfg.TargetPolarization = raw.TargetPolarization
	if raw.TrentoConvention != nil {
		cfg.TrentoConvention = *raw.TrentoConvention
	}
	if c := raw.Contributions; c != nil {
		if c.BH != nil {
			cfg.Contributions.BH = *c.BH
		}
		if c.DVCS != nil {
			cfg.Contributions.DVCS = *c.DVCS
		}
		if c.Interference != nil {
			cfg.Contributions.Interference = *c.Interference
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}
