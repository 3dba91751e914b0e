// Package app provides the dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/allisson/pseudonym/internal/auth/service"
	"github.com/allisson/pseudonym/internal/config"
	cryptoService "github.com/allisson/pseudonym/internal/crypto/service"
	"github.com/allisson/pseudonym/internal/http"
	"github.com/allisson/pseudonym/internal/localedata"
	maskingHTTP "github.com/allisson/pseudonym/internal/masking/http"
	maskingUsecase "github.com/allisson/pseudonym/internal/masking/usecase"
	"github.com/allisson/pseudonym/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	masterSalt      []byte

	// Services
	apiKeyService authService.APIKeyService
	localeData    *localedata.Provider

	// Use Cases
	maskingUseCase maskingUsecase.MaskingUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	masterSaltInit      sync.Once
	apiKeyServiceInit   sync.Once
	localeDataInit      sync.Once
	maskingUseCaseInit  sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op
// implementation is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		provider, provErr := c.MetricsProvider()
		if provErr != nil {
			err = provErr
			c.initErrors["businessMetrics"] = provErr
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		c.businessMetrics, err = metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// MasterSalt returns the resolved master salt bytes, unwrapping via KMS when configured.
func (c *Container) MasterSalt(ctx context.Context) ([]byte, error) {
	var err error
	c.masterSaltInit.Do(func() {
		saltService := cryptoService.NewMasterSaltService(cryptoService.MasterSaltConfig{
			PlainBase64:     c.config.MasterSalt,
			EncryptedBase64: c.config.MasterSaltEncrypted,
			KMSKeyURI:       c.config.KMSKeyURI,
		}, cryptoService.NewKMSService())

		c.masterSalt, err = saltService.Resolve(ctx)
		if err != nil {
			c.initErrors["masterSalt"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterSalt"]; exists {
		return nil, storedErr
	}
	return c.masterSalt, nil
}

// APIKeyService returns the API key service instance.
func (c *Container) APIKeyService() authService.APIKeyService {
	c.apiKeyServiceInit.Do(func() {
		c.apiKeyService = authService.NewAPIKeyService()
	})
	return c.apiKeyService
}

// LocaleData returns the embedded locale data provider.
func (c *Container) LocaleData() *localedata.Provider {
	c.localeDataInit.Do(func() {
		c.localeData = localedata.NewProvider()
	})
	return c.localeData
}

// MaskingUseCase returns the masking use case, decorated with metrics.
func (c *Container) MaskingUseCase(ctx context.Context) (maskingUsecase.MaskingUseCase, error) {
	var err error
	c.maskingUseCaseInit.Do(func() {
		masterSalt, saltErr := c.MasterSalt(ctx)
		if saltErr != nil {
			err = saltErr
			c.initErrors["maskingUseCase"] = saltErr
			return
		}

		businessMetrics, metricsErr := c.BusinessMetrics()
		if metricsErr != nil {
			err = metricsErr
			c.initErrors["maskingUseCase"] = metricsErr
			return
		}

		useCase := maskingUsecase.NewMaskingUseCase(maskingUsecase.Config{
			MasterSalt:          masterSalt,
			DefaultLocale:       c.config.DefaultLocale,
			PreserveEmailDomain: c.config.PreserveEmailDomain,
		}, c.LocaleData())

		c.maskingUseCase = maskingUsecase.NewMaskingUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["maskingUseCase"]; exists {
		return nil, storedErr
	}
	return c.maskingUseCase, nil
}

// HTTPServer returns the API server instance.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		useCase, ucErr := c.MaskingUseCase(ctx)
		if ucErr != nil {
			err = ucErr
			c.initErrors["httpServer"] = ucErr
			return
		}

		provider, provErr := c.MetricsProvider()
		if provErr != nil {
			err = provErr
			c.initErrors["httpServer"] = provErr
			return
		}

		handler := maskingHTTP.NewMaskingHandler(useCase, c.Logger())
		c.httpServer = http.NewServer(c.config, handler, c.APIKeyService(), provider, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		provider, provErr := c.MetricsProvider()
		if provErr != nil {
			err = provErr
			c.initErrors["metricsServer"] = provErr
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
