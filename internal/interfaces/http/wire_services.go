package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	notificationApp "github.com/incidentdesk/incidentdesk/internal/application/notification"
	notificationUsecases "github.com/incidentdesk/incidentdesk/internal/application/notification/usecases"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/auth"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/cache"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/config"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/metrics"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/permission"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/ratelimit"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/storage"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
	shareddb "github.com/incidentdesk/incidentdesk/internal/shared/db"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/services/markdown"
)

const (
	unreadCountKeyPrefix = "incidentdesk:unread"
	loginRateLimitPrefix = "incidentdesk:ratelimit"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Basic Services
// ============================================================

// initInfrastructure initializes Redis, repositories, storage, auth services
// and the event pipeline that feeds notifications.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	admin, err := adminIdentity(cfg)
	if err != nil {
		return err
	}
	c.admin = admin

	c.redis = initRedis(ctx, cfg, log)
	c.repos = newRepositories(c.db, log)
	c.txMgr = shareddb.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()

	if cfg.Metrics.Enabled {
		c.metrics = metrics.New(cfg.Metrics.Prefix)
	}

	c.photoStorage = storage.New(ctx, &cfg.Storage, log)
	c.unreadCache = newUnreadCountCache(c.redis, cfg)
	c.loginLimiter = newLoginLimiter(c.redis, cfg)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessTTL())

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed route policies: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.userRepo, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	return c.initEvents()
}

// initEvents wires the synchronous event dispatcher: ticket events become
// creator notifications and operation counters.
func (c *Container) initEvents() error {
	c.eventDispatcher = events.NewSyncEventDispatcher()
	c.notificationService = notificationApp.NewService(c.repos.notificationRepo, c.unreadCache, c.metrics, c.log)

	if err := c.notificationService.Dispatcher().Register(c.eventDispatcher); err != nil {
		return fmt.Errorf("failed to register notification dispatcher: %w", err)
	}

	counter := &ticketOperationCounter{metrics: c.metrics}
	for _, eventType := range counter.eventTypes() {
		if err := c.eventDispatcher.Subscribe(eventType, counter); err != nil {
			return fmt.Errorf("failed to register ticket metrics: %w", err)
		}
	}
	return nil
}

// adminIdentity reads the reserved administrator pair from the bootstrap
// section, falling back to the built-in pair for blank values.
func adminIdentity(cfg *config.Config) (user.AdminIdentity, error) {
	code := cfg.Bootstrap.AdminAccessCode
	if code == "" {
		code = user.DefaultAdminAccessCode
	}
	name := cfg.Bootstrap.AdminDisplayName
	if name == "" {
		name = user.DefaultAdminDisplayName
	}
	admin, err := user.NewAdminIdentity(code, name)
	if err != nil {
		return user.AdminIdentity{}, fmt.Errorf("invalid bootstrap administrator: %w", err)
	}
	return admin, nil
}

// initRedis connects when Redis is enabled. A failed connection degrades to
// in-process rate limiting and an uncached unread badge.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, using in-process fallbacks")
		return nil
	}

	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, using in-process fallbacks", "error", err)
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())
	return client
}

func newUnreadCountCache(client *redis.Client, cfg *config.Config) notificationUsecases.UnreadCountCache {
	if client == nil {
		return cache.NoopUnreadCountCache{}
	}
	ttl := time.Duration(cfg.Redis.UnreadCountTTLSeconds) * time.Second
	return cache.NewRedisUnreadCountCache(client, unreadCountKeyPrefix, ttl)
}

// newLoginLimiter returns nil when login throttling is disabled.
func newLoginLimiter(client *redis.Client, cfg *config.Config) ratelimit.RateLimiter {
	rl := cfg.Auth.LoginRateLimit
	if !rl.Enabled {
		return nil
	}
	limiterCfg := ratelimit.Config{
		MaxAttempts: rl.MaxAttempts,
		Window:      time.Duration(rl.WindowSeconds) * time.Second,
	}
	if client != nil {
		return ratelimit.NewRedisRateLimiter(client, limiterCfg, loginRateLimitPrefix)
	}
	return ratelimit.NewMemoryRateLimiter(limiterCfg)
}

// ticketOperationCounter counts committed ticket events per type.
type ticketOperationCounter struct {
	metrics *metrics.Metrics
}

func (h *ticketOperationCounter) eventTypes() []string {
	return []string{
		ticket.EventTypeStatusChanged,
		ticket.EventTypeFieldsEdited,
		ticket.EventTypeCommentAdded,
	}
}

func (h *ticketOperationCounter) CanHandle(eventType string) bool {
	for _, t := range h.eventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *ticketOperationCounter) Handle(_ context.Context, event events.DomainEvent) error {
	h.metrics.RecordTicketOperation(event.GetEventType())
	return nil
}
