package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/util"
)

// Config: 공연 정보 프록시 API의 전체 동작에 필요한 설정을 담는 구조체
type Config struct {
	Server  ServerConfig
	Kopis   KopisConfig
	Logging LoggingConfig
	Version string
}

// ServerConfig: HTTP 서버 리슨 설정
type ServerConfig struct {
	Port int
}

// KopisConfig: KOPIS Open API 인증 키 및 베이스 URL 설정
type KopisConfig struct {
	APIKey  string
	BaseURL string
}

// MaskedAPIKey: 디버깅 응답용으로 마스킹된 API 키를 반환한다.
// 키 전체가 노출되지 않도록 앞 4자리만 남긴다.
func (k KopisConfig) MaskedAPIKey() string {
	key := util.TrimSpace(k.APIKey)
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}

// LoggingConfig: 애플리케이션 로그 설정 (레벨, 디렉토리, 로테이션 정책)
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load: .env 파일 및 환경 변수로부터 설정을 로드하고, 기본값을 적용하여 Config 객체를 생성한다.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Kopis: KopisConfig{
			APIKey:  util.TrimSpace(getEnv("KOPIS_API_KEY", "")),
			BaseURL: util.TrimSpace(getEnv("KOPIS_BASE_URL", constants.KopisAPI.DefaultBaseURL)),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "1.0.0-go")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate: 필수 설정값이 누락되지 않았는지 검증한다.
// API 키 유효성 자체는 업스트림이 판정하므로 로컬에서는 존재 여부만 확인한다.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Kopis.APIKey == "" {
		return fmt.Errorf("KOPIS_API_KEY is required")
	}
	if c.Kopis.BaseURL == "" {
		return fmt.Errorf("KOPIS_BASE_URL must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
