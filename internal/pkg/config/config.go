package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		StorageSweepInterval   time.Duration
		StorageGraceDays       int
		StorageWarningDays     int
		PackageArchiveInterval time.Duration
		ArchiveAfterDays       int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Otp struct {
		Length      int
		TTL         time.Duration
		MaxAttempts int
	}

	Qr struct {
		PublicBaseURL string
		ArtifactsDir  string
	}

	EmailGateway struct {
		BaseURL string
		APIKey  string
		From    string
	}

	WhatsappGateway struct {
		BaseURL    string
		AccountSID string
		AuthToken  string
		From       string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PackageInbound PackageInbound
	}

	PackageInbound struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Otp      Otp
		Qr       Qr
		Email    EmailGateway
		Whatsapp WhatsappGateway
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	sweepInterval, err := osGetEnvDuration("BACKGROUND_STORAGE_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storageGraceDays, err := osGetInt("STORAGE_GRACE_DAYS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	storageWarningDays, err := osGetInt("STORAGE_WARNING_DAYS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	archiveInterval, err := osGetEnvDuration("BACKGROUND_PACKAGE_ARCHIVE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	archiveAfterDays, err := osGetInt("PACKAGE_ARCHIVE_AFTER_DAYS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otpLength, err := osGetInt("OTP_LENGTH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otpTTL, err := osGetEnvDuration("OTP_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	otpMaxAttempts, err := osGetInt("OTP_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	packageInboundTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PACKAGE_INBOUND_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StorageSweepInterval:   sweepInterval,
			StorageGraceDays:       storageGraceDays,
			StorageWarningDays:     storageWarningDays,
			PackageArchiveInterval: archiveInterval,
			ArchiveAfterDays:       archiveAfterDays,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Otp: Otp{
			Length:      otpLength,
			TTL:         otpTTL,
			MaxAttempts: otpMaxAttempts,
		},
		Qr: Qr{
			PublicBaseURL: os.Getenv("QR_PUBLIC_BASE_URL"),
			ArtifactsDir:  os.Getenv("QR_ARTIFACTS_DIR"),
		},
		Email: EmailGateway{
			BaseURL: os.Getenv("EMAIL_GATEWAY_BASE_URL"),
			APIKey:  os.Getenv("EMAIL_GATEWAY_API_KEY"),
			From:    os.Getenv("EMAIL_GATEWAY_FROM"),
		},
		Whatsapp: WhatsappGateway{
			BaseURL:    os.Getenv("WHATSAPP_GATEWAY_BASE_URL"),
			AccountSID: os.Getenv("WHATSAPP_GATEWAY_ACCOUNT_SID"),
			AuthToken:  os.Getenv("WHATSAPP_GATEWAY_AUTH_TOKEN"),
			From:       os.Getenv("WHATSAPP_GATEWAY_FROM"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PackageInbound: PackageInbound{
					ProcessTimeout: packageInboundTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.StorageSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STORAGE_SWEEP_INTERVAL is required")
	}
	if cfg.Tasks.PackageArchiveInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PACKAGE_ARCHIVE_INTERVAL is required")
	}

	if cfg.Qr.PublicBaseURL == "" {
		return errors.New("QR_PUBLIC_BASE_URL is required")
	}
	if cfg.Qr.ArtifactsDir == "" {
		return errors.New("QR_ARTIFACTS_DIR is required")
	}

	// шлюзы уведомлений опциональны: без них срабатывает ручной фолбэк,
	// но частично заданная конфигурация — это ошибка оператора
	if cfg.Email.BaseURL != "" && (cfg.Email.APIKey == "" || cfg.Email.From == "") {
		return errors.New("EMAIL_GATEWAY_API_KEY and EMAIL_GATEWAY_FROM are required when EMAIL_GATEWAY_BASE_URL is set")
	}
	if cfg.Whatsapp.BaseURL != "" && (cfg.Whatsapp.AccountSID == "" || cfg.Whatsapp.AuthToken == "" || cfg.Whatsapp.From == "") {
		return errors.New("WHATSAPP_GATEWAY_ACCOUNT_SID, WHATSAPP_GATEWAY_AUTH_TOKEN and WHATSAPP_GATEWAY_FROM are required when WHATSAPP_GATEWAY_BASE_URL is set")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PackageInbound.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PACKAGE_INBOUND_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
