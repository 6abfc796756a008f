package main

import (
	"PostFeed/confirm"
	"os"
	"strconv"
	"time"
)

const defaultPort = "8080"

type config struct {
	Port        string
	DatasetPath string

	ConfirmLatency     time.Duration
	ConfirmFailureRate float64

	OTLPEndpoint string
	ServiceName  string
	Environment  string
	SampleRatio  float64
}

// Конфигурация из переменных окружения
func loadConfig() config {
	return config{
		Port:               getEnv("PORT", defaultPort),
		DatasetPath:        os.Getenv("DATASET_PATH"),
		ConfirmLatency:     time.Duration(getEnvInt("CONFIRM_LATENCY_MS", int(confirm.DefaultLatency/time.Millisecond))) * time.Millisecond,
		ConfirmFailureRate: getEnvFloat("CONFIRM_FAILURE_RATE", confirm.DefaultFailureRate),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:        getEnv("OTEL_SERVICE_NAME", "postfeed"),
		Environment:        getEnv("ENV", "dev"),
		SampleRatio:        getEnvFloat("OTEL_TRACES_SAMPLER_ARG", 1),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f < 0 || f > 1 {
		return defaultValue
	}
	return f
}
