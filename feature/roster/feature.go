package roster

import (
	"roster-sync/core/storage"
	"roster-sync/feature/roster/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	service *Service
	handler *Handler
}

// NewFeature creates a new roster feature. The reference provider is selected
// by cfg.Source; the static dataset always serves as the fallback provider.
func NewFeature(client storage.Client, bucket, prefix string, db *gorm.DB, publisher Publisher, cfg Config, logger *zap.Logger) *Feature {
	static := source.NewStaticProvider()

	var provider source.Provider = static
	if cfg.Source == SourceDatabase {
		provider = source.NewDBProvider(db)
	}

	svc := NewService(client, bucket, prefix, provider, static, publisher, cfg, logger)
	h := NewHandler(svc)
	return &Feature{cfg: cfg, service: svc, handler: h}
}

// Service exposes the feature's service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "roster"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
