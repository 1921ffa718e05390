package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/adapters/cache"
	"freight-quote-service/internal/adapters/geo"
	"freight-quote-service/internal/adapters/inventory"
	"freight-quote-service/internal/api"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/db"
	"freight-quote-service/internal/platform/metrics"
	"freight-quote-service/internal/platform/obs"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (ViaCEP, IBGE, Tray, cache backends) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	obs.Setup("freight-quote-service")

	port := getEnv("PORT", "8080")
	ratePerKm := getEnvFloat("RATE_PER_KM", 7.0)
	if ratePerKm <= 0 {
		log.Fatal().Float64("rate_per_km", ratePerKm).Msg("RATE_PER_KM must be positive")
	}

	catalog := domain.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("distribution center catalog is invalid")
	}

	quoteMetrics := metrics.NewQuoteMetrics()

	resolutionCache, closeCache := openResolutionCache()
	if closeCache != nil {
		defer closeCache()
	}

	viacep := geo.NewViaCEPClient(os.Getenv("VIACEP_BASE_URL"))
	ibge := geo.NewIBGEClient(os.Getenv("IBGE_BASE_URL"))
	resolver := geo.NewResolver(viacep, ibge, ibge, resolutionCache, quoteMetrics.GeoFallbacks)

	stock := inventory.NewTrayStockChecker(os.Getenv("TRAY_API_URL"), os.Getenv("TRAY_API_TOKEN"))
	if !stock.Configured() {
		log.Info().Msg("inventory API not configured, stock checks assume availability")
	}

	quotes := services.NewQuoteService(catalog, resolver, stock, ratePerKm, quoteMetrics)

	router := api.NewRouter(api.RouterDeps{
		Quotes:  quotes,
		Catalog: catalog,
		GeoPing: func(r *http.Request) bool {
			return ibge.Ping(r.Context())
		},
		InventoryConfigured: stock.Configured(),
	})

	log.Info().
		Str("port", port).
		Int("centers", len(catalog)).
		Float64("rate_per_km", ratePerKm).
		Msg("server listening")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

// openResolutionCache builds the configured resolution cache backend.
// Returns a nil cache when caching is disabled.
func openResolutionCache() (ports.ResolutionCache, func()) {
	switch backend := getEnv("GEOCODE_CACHE", "none"); backend {
	case "postgres":
		pool, err := db.Open(os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres resolution cache")
		}
		if err := cache.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("init postgres resolution cache")
		}
		log.Info().Str("backend", backend).Msg("resolution cache enabled")
		return cache.NewSQLResolutionCache(pool), func() { _ = pool.Close() }

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		})
		ttl := getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour)
		log.Info().Str("backend", backend).Dur("ttl", ttl).Msg("resolution cache enabled")
		return cache.NewRedisResolutionCache(client, ttl), func() { _ = client.Close() }

	case "none":
		return nil, nil

	default:
		log.Fatal().Str("backend", backend).Msg("unknown GEOCODE_CACHE backend")
		return nil, nil
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", raw).Msg("invalid numeric environment variable")
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", raw).Msg("invalid duration environment variable")
	}
	return v
}
