package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sahaayak/internal/httpapi"
	"sahaayak/internal/oracle"
	"sahaayak/internal/service"
	"sahaayak/internal/store"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	if err := loadConfigFile("sahaayak.ini"); err != nil {
		logger.Warn("load sahaayak.ini failed", zap.Error(err))
	}
	if err := loadConfigFile(".env"); err != nil {
		logger.Warn("load .env failed", zap.Error(err))
	}

	addr := resolveListenAddr()
	storeEngine := strings.ToLower(envOrDefault("SAHAAYAK_STORE", store.EngineSQLite))
	dataFile := envOrDefault("SAHAAYAK_DATA_FILE", defaultDataFile(storeEngine))

	st, err := store.NewByEngine(storeEngine, dataFile)
	if err != nil {
		logger.Fatal("init store failed", zap.Error(err))
	}
	if closer, ok := st.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("store close failed", zap.Error(err))
			}
		}()
	}

	svc := service.New(st, logger)
	if client := initOracleFromEnv(logger); client != nil {
		svc.SetOracleClient(client)
		logger.Info("oracle integration enabled")
	} else {
		logger.Info("oracle integration disabled, running with local fallbacks only")
	}

	handler := httpapi.NewHandler(svc, logger)
	router := httpapi.NewRouter(handler, logger)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("sahaayak backend listening",
		zap.String("addr", addr),
		zap.String("store", storeEngine),
		zap.String("data_file", dataFile))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func initOracleFromEnv(logger *zap.Logger) *oracle.Client {
	apiKey := strings.TrimSpace(os.Getenv("SAHAAYAK_ORACLE_API_KEY"))
	if apiKey == "" {
		return nil
	}
	cfg := oracle.Config{
		BaseURL: envOrDefault("SAHAAYAK_ORACLE_BASE_URL", ""),
		APIKey:  apiKey,
		Model:   envOrDefault("SAHAAYAK_ORACLE_MODEL", ""),
		Timeout: time.Duration(parseEnvInt("SAHAAYAK_ORACLE_TIMEOUT_SECONDS", 20)) * time.Second,
	}
	client, err := oracle.NewClient(cfg)
	if err != nil {
		logger.Warn("init oracle client failed", zap.Error(err))
		return nil
	}
	return client
}

func resolveListenAddr() string {
	defaultHost, defaultPort := parseListenAddr(envOrDefault("SAHAAYAK_ADDR", ":8080"))
	if defaultPort <= 0 {
		defaultPort = 8080
	}

	defaultHost = strings.TrimSpace(envOrDefault("SAHAAYAK_HOST", defaultHost))
	defaultPort = parseEnvInt("SAHAAYAK_PORT", defaultPort)

	host := flag.String("host", defaultHost, "server listen host, e.g. 0.0.0.0")
	port := flag.Int("port", defaultPort, "server listen port, e.g. 8080")
	flag.Parse()

	return joinListenAddr(strings.TrimSpace(*host), *port)
}

func parseListenAddr(addr string) (string, int) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", 0
	}
	if strings.HasPrefix(addr, ":") {
		return "", parseEnvIntValue(strings.TrimPrefix(addr, ":"), 0)
	}
	if host, port, err := net.SplitHostPort(addr); err == nil {
		return host, parseEnvIntValue(port, 0)
	}
	if portOnly := parseEnvIntValue(addr, 0); portOnly > 0 {
		return "", portOnly
	}
	return addr, 0
}

func joinListenAddr(host string, port int) string {
	if port <= 0 {
		port = 8080
	}
	if host == "" {
		return fmt.Sprintf(":%d", port)
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func defaultDataFile(storeEngine string) string {
	switch storeEngine {
	case store.EngineJSON:
		return "data/sahaayak.json"
	default:
		return "data/sahaayak.db"
	}
}

func envOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func parseEnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	return parseEnvIntValue(raw, fallback)
}

func parseEnvIntValue(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

// loadConfigFile reads a simple ini/.env style file into the environment.
// Variables already set in the environment win over file values.
func loadConfigFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		sep := strings.Index(line, "=")
		if sep <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:sep])
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		value := strings.TrimSpace(line[sep+1:])
		value = strings.Trim(value, "\"'")
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}
