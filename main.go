package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/interactive-basics-demo/modules/api"
	"github.com/example/interactive-basics-demo/modules/calculator"
	"github.com/example/interactive-basics-demo/modules/console"
	"github.com/example/interactive-basics-demo/modules/tips"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("HTTP_PORT", 3000)
	tipsSeed := getEnvUint("TIPS_SEED", 0)
	shutdownTimeout := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	logLevel := mono.LogLevelInfo
	if getEnv("LOG_LEVEL", "info") == "error" {
		logLevel = mono.LogLevelError
	}

	log.Println("=== Interactive Basics Demo ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("Tips seed: %d (0 = random)", tipsSeed)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(logLevel),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies
	app.Register(calculator.NewModule())                                // Evaluator (RequestReplyService, emits events)
	app.Register(tips.NewModule(app.Logger(), tips.WithSeed(tipsSeed))) // Tip sessions (RequestReplyService, emits events)
	app.Register(console.NewModule(app.Logger()))                       // Event consumer (console output)
	app.Register(api.NewModule(httpPort))                               // Driving adapter (depends on calculator, tips)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Request-reply services:")
	log.Println("  - services.calculator.calculate")
	log.Println("  - services.tips.create-session, services.tips.next-tip, services.tips.get-session")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  GET    /api/v1/operations              - List calculator operations")
	log.Println("  POST   /api/v1/calculate               - Evaluate {operation, a, b}")
	log.Println("  POST   /api/v1/greet                   - Personal greeting {name}")
	log.Println("  POST   /api/v1/tips/sessions           - Start a tip session")
	log.Println("  GET    /api/v1/tips/sessions/:id       - Show a tip session")
	log.Println("  POST   /api/v1/tips/sessions/:id/next  - Add a random tip")
	log.Println("  GET    /health                         - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvUint returns environment variable as uint64 or default.
func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
		log.Printf("Warning: invalid uint value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
