package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"hortifruti/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	// Revalidate any stored credential before traffic arrives; guarded
	// routes answer 503 while this runs.
	go func() {
		if err := app.SessionManager().Restore(context.Background()); err != nil {
			logger.Error("session restore failed", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL:     goDotEnvVariable("BACKEND_BASE_URL"),
		CredentialFilePath: goDotEnvVariable("CREDENTIAL_FILE_PATH"),
		NoticeLimit:        envInt("NOTICE_LIMIT", 50),
		AudioEnabled:       envBool("AUDIO_ENABLED"),
		PushEnabled:        envBool("PUSH_ENABLED"),
		LoginRatePerMinute: envFloat("LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:         envInt("LOGIN_BURST", 5),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func envBool(key string) bool {
	return goDotEnvVariable(key) == "true"
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreatePanelServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
