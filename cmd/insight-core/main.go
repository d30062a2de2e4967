package main

// @title           Insight Core API
// @version         1.0
// @description     Narrative annotation API. Insight Core turns analytic narratives into sections, labelled lines, classified tokens, citation artifacts and a timeline.

// @contact.name   Insight Core OSS
// @contact.url    https://github.com/custodia-labs/insight-core/issues

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/insight-core/internal/adapters/driven/auth"
	"github.com/custodia-labs/insight-core/internal/adapters/driven/idgen"
	"github.com/custodia-labs/insight-core/internal/adapters/driven/memory"
	"github.com/custodia-labs/insight-core/internal/adapters/driven/postgres"
	redisadapter "github.com/custodia-labs/insight-core/internal/adapters/driven/redis"
	"github.com/custodia-labs/insight-core/internal/adapters/driving/http"
	"github.com/custodia-labs/insight-core/internal/annotator"
	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
	"github.com/custodia-labs/insight-core/internal/core/services"
	"github.com/custodia-labs/insight-core/internal/normalisers"
)

var version = "dev"

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Get run mode from environment (RUN_MODE) or command line arg
	mode := getEnv("RUN_MODE", "serve")
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	jwtSecret := getEnv("JWT_SECRET", "development-secret-change-in-production")

	ids, err := idgen.NewSnowflake(int64(getEnvInt("NODE_ID", 1)))
	if err != nil {
		log.Fatalf("Failed to create ID generator: %v", err)
	}
	authService := services.NewAuthService(auth.NewAdapter(jwtSecret), ids, slog.Default())

	switch mode {
	case "serve":
		log.Printf("insight-core %s starting", version)
		serve(authService, ids)
	case "token":
		issueToken(authService)
	default:
		log.Fatalf("Unknown run mode %q (expected serve or token)", mode)
	}
}

func serve(authService driving.AuthService, ids driven.IDGenerator) {
	port := getEnvInt("PORT", 8080)
	host := getEnv("HOST", "0.0.0.0")
	databaseURL := getEnv("DATABASE_URL", "")
	redisURL := getEnv("REDIS_URL", "")
	authDisabled := getEnvBool("AUTH_DISABLED", false)

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	// Pingers stay nil interfaces when a backend is not configured
	var dbPinger, cachePinger http.Pinger

	// ===== Narrative archive (optional) =====
	var store driven.NarrativeStore
	if databaseURL != "" {
		log.Println("Connecting to PostgreSQL...")
		dbConfig := postgres.DefaultConfig(databaseURL)
		dbConfig.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", dbConfig.MaxOpenConns)
		dbConfig.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", dbConfig.MaxIdleConns)

		db, err := postgres.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = postgres.NewNarrativeStore(db)
		dbPinger = db
		log.Println("PostgreSQL connected and schema initialized")
	} else {
		log.Println("DATABASE_URL not set, narrative archive disabled")
	}

	// ===== Annotation cache =====
	var cache driven.AnnotationCache
	if redisURL != "" {
		log.Println("Connecting to Redis...")
		redisClient, err := redisadapter.Connect(ctx, redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		redisCache := redisadapter.NewAnnotationCache(redisClient)
		cache = redisCache
		cachePinger = redisCache
		log.Println("Redis connected")
	} else {
		memCache, err := memory.NewAnnotationCache(getEnvInt("CACHE_SIZE", memory.DefaultSize))
		if err != nil {
			log.Fatalf("Failed to create in-memory cache: %v", err)
		}
		cache = memCache
		log.Println("Using in-memory annotation cache")
	}

	// ===== Annotation engine =====
	engine := annotator.New(annotator.Config{
		CollapseThreshold: getEnvInt("ANNOTATE_COLLAPSE_THRESHOLD", annotator.DefaultCollapseThreshold),
		MaxLabelLength:    getEnvInt("ANNOTATE_MAX_LABEL_LENGTH", annotator.DefaultMaxLabelLength),
	})
	engineConfig := engine.Config()

	// ===== Core services =====
	narrativeService := services.NewNarrativeService(services.NarrativeServiceConfig{
		Annotator:   engine,
		Normalisers: normalisers.DefaultRegistry(),
		Cache:       cache,
		Store:       store,
		IDs:         ids,
		// Entries from a different engine configuration must not be shared
		CacheNamespace:    fmt.Sprintf("v1:c%d:l%d", engineConfig.CollapseThreshold, engineConfig.MaxLabelLength),
		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_SEC", int(services.DefaultCacheTTL/time.Second))) * time.Second,
		MaxNarrativeBytes: getEnvInt("MAX_NARRATIVE_BYTES", services.DefaultMaxNarrativeBytes),
		Logger:            slog.Default(),
	})

	// ===== HTTP server =====
	if authDisabled {
		log.Println("Warning: AUTH_DISABLED is set, every request is treated as a local admin")
	}
	serverConfig := http.Config{
		Host:         host,
		Port:         port,
		Version:      version,
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", http.DefaultMaxBodyBytes)),
		AuthDisabled: authDisabled,
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "")),
		Logger:       slog.Default(),
	}
	server := http.NewServer(serverConfig, narrativeService, authService, dbPinger, cachePinger)

	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// issueToken mints an API token and prints it to stdout
func issueToken(authService driving.AuthService) {
	req := driving.IssueTokenRequest{
		Subject: getEnv("TOKEN_SUBJECT", ""),
		Role:    domain.Role(getEnv("TOKEN_ROLE", string(domain.RoleMember))),
		TTL:     time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
	if len(os.Args) > 2 {
		req.Subject = os.Args[2]
	}

	issued, err := authService.IssueToken(context.Background(), req)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	log.Printf("Issued %s token for %s (expires %s)", issued.Role, issued.Subject, issued.ExpiresAt.Format(time.RFC3339))
	fmt.Println(issued.Token)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping empty entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
