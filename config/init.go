package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/customeros/graphmail/internal/logger"
	"github.com/customeros/graphmail/internal/tracing"
)

func InitConfig() (*Config, error) {
	config := &Config{
		Azure:   &AzureADConfig{},
		Graph:   &GraphAPIConfig{},
		Logger:  &logger.Config{},
		Tracing: &tracing.JaegerConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	err = validate.Struct(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
