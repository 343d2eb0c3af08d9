package http

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	identityUsecases "github.com/incidentdesk/incidentdesk/internal/application/identity/usecases"
	notificationApp "github.com/incidentdesk/incidentdesk/internal/application/notification"
	notificationUsecases "github.com/incidentdesk/incidentdesk/internal/application/notification/usecases"
	zoneUsecases "github.com/incidentdesk/incidentdesk/internal/application/zone/usecases"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/auth"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/config"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/metrics"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/permission"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/ratelimit"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/seed"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/storage"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	shareddb "github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It is responsible for wiring everything together and providing a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	sqlDB  *sql.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         ratelimit.RateLimiter

	// Auth & policy
	admin    user.AdminIdentity
	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Shared services
	txMgr               *shareddb.TransactionManager
	markdown            markdown.MarkdownService
	photoStorage        storage.PhotoStorage
	unreadCache         notificationUsecases.UnreadCountCache
	metrics             *metrics.Metrics
	eventDispatcher     *events.SyncEventDispatcher
	notificationService *notificationApp.Service
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		sqlDB:  sqlDB,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Storage, Events
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers
	c.initHandlers()

	return c, nil
}

// Bootstrap creates the administrator account and the default zones when
// they are missing. It is safe to run on every start.
func (c *Container) Bootstrap(ctx context.Context) error {
	created, err := c.ucs.bootstrapAdminUC.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to bootstrap administrator: %w", err)
	}

	zones, err := c.ucs.ensureDefaultZonesUC.Execute(ctx, c.cfg.Bootstrap.DefaultZones)
	if err != nil {
		return fmt.Errorf("failed to create default zones: %w", err)
	}

	c.log.Infow("bootstrap completed", "admin_created", created, "zones_created", zones)
	return nil
}

// ApplySeed creates the zones and users listed in a seed file. Entries that
// already exist are skipped, so a file can be applied repeatedly.
func (c *Container) ApplySeed(ctx context.Context, f *seed.File) error {
	actor := authorization.NewActor(0, authorization.RoleAdmin)

	for _, name := range f.Zones {
		result, err := c.ucs.createZoneUC.Execute(ctx, zoneUsecases.CreateZoneCommand{Actor: actor, Name: name})
		if err != nil {
			return fmt.Errorf("failed to seed zone %q: %w", name, err)
		}
		if !result.Created {
			c.log.Infow("seed zone already present", "name", name)
		}
	}

	for _, u := range f.Users {
		_, err := c.ucs.createUserUC.Execute(ctx, identityUsecases.CreateUserCommand{
			Actor:       actor,
			DisplayName: u.DisplayName,
			AccessCode:  u.AccessCode,
		})
		if errors.HasReason(err, errors.ReasonDuplicateAccessCode) {
			c.log.Warnw("seed user skipped, access code taken", "display_name", u.DisplayName)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.DisplayName, err)
		}
	}

	c.log.Infow("seed file applied", "zones", len(f.Zones), "users", len(f.Users))
	return nil
}

// Shutdown releases connections owned by the container. The database handle
// belongs to the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
