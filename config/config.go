package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/board"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage       = "STAGE"
	EnvPort        = "PORT"
	EnvDatabaseUrl = "DATABASE_URL"
	EnvBoardLayout = "BOARD_LAYOUT"
)

type Config struct {
	Stage       string
	Port        int
	DatabaseUrl string
	Layout      mb.Layout
}

// Load reads the environment. Outside of prod the variables are first
// loaded from envFile.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	}

	stage := os.Getenv(EnvStage)
	if stage != StageDev && stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(stage)
	}

	portEnv := os.Getenv(EnvPort)
	if portEnv == "" {
		return Config{}, cerr.ErrEnvMissing(EnvPort)
	}
	port, err := strconv.Atoi(portEnv)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvPort, err)
	}

	layout := mb.DefaultLayout()
	if path := os.Getenv(EnvBoardLayout); path != "" {
		layout, err = LoadLayout(path)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		Stage:       stage,
		Port:        port,
		DatabaseUrl: os.Getenv(EnvDatabaseUrl),
		Layout:      layout,
	}, nil
}

// LoadLayout reads a YAML board layout. Keys missing from the file keep
// their default value; a fleet in the file replaces the default fleet.
func LoadLayout(path string) (mb.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mb.Layout{}, err
	}
	return ParseLayout(data)
}

func ParseLayout(data []byte) (mb.Layout, error) {
	layout := mb.DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return mb.Layout{}, fmt.Errorf("failed to parse board layout: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return mb.Layout{}, err
	}
	return layout, nil
}
