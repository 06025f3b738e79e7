package config

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/zucenko/trucxanh/model"
)

const DefaultPath = "trucxanh.yaml"

type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
}

type Cards struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

type Sound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Config struct {
	Window     Window `yaml:"window"`
	Cards      Cards  `yaml:"cards"`
	Sound      Sound  `yaml:"sound"`
	RestartKey string `yaml:"restart_key"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	layout := model.DefaultLayout()
	return Config{
		Window: Window{
			Width:  layout.Width,
			Height: layout.Height,
			Scale:  1,
			Title:  model.Title,
		},
		Cards: Cards{
			Width:  layout.CardWidth,
			Height: layout.CardHeight,
			Margin: layout.Margin,
		},
		Sound:      Sound{Enabled: true, Volume: 0.5},
		RestartKey: "R",
		LogLevel:   "info",
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Infof("config %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	return read(file)
}

func read(reader io.Reader) (Config, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Scale <= 0 {
		return fmt.Errorf("window size %dx%d scale %v must be positive", c.Window.Width, c.Window.Height, c.Window.Scale)
	}
	if c.Cards.Width <= 0 || c.Cards.Height <= 0 || c.Cards.Margin < 0 {
		return fmt.Errorf("card size %dx%d margin %d is invalid", c.Cards.Width, c.Cards.Height, c.Cards.Margin)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("volume %v outside [0,1]", c.Sound.Volume)
	}
	if _, err := model.ParseKey(c.RestartKey); err != nil {
		return fmt.Errorf("restart_key: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c Config) Layout() model.Layout {
	return model.Layout{
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		CardWidth:  c.Cards.Width,
		CardHeight: c.Cards.Height,
		Margin:     c.Cards.Margin,
	}
}

// Key and Level are only valid after Validate.
func (c Config) Key() model.Key {
	k, _ := model.ParseKey(c.RestartKey)
	return k
}

func (c Config) Level() log.Level {
	l, _ := log.ParseLevel(c.LogLevel)
	return l
}
