package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/infrastructure/auth"
	"github.com/orris-inc/setracker/internal/infrastructure/cache"
	"github.com/orris-inc/setracker/internal/infrastructure/config"
	"github.com/orris-inc/setracker/internal/infrastructure/email"
	"github.com/orris-inc/setracker/internal/infrastructure/metrics"
	"github.com/orris-inc/setracker/internal/infrastructure/ratelimit"
	"github.com/orris-inc/setracker/internal/infrastructure/services"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	sharedConfig "github.com/orris-inc/setracker/internal/shared/config"
	"github.com/orris-inc/setracker/internal/shared/db"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/services/markdown"
)

const redisConnectTimeout = 5 * time.Second

var errRedisRequired = errors.New("ticket sequence backend redis requires a redis connection")

// Container holds all infrastructure components, repositories, use cases and
// handlers, and wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	// Infrastructure services
	jwtSvc        *auth.JWTService
	jwtService    *jwtServiceAdapter
	hasher        *auth.BcryptPasswordHasher
	loginLimiter  *ratelimit.RedisRateLimiter
	numbers       ticket.NumberGenerator
	txManager     *db.TransactionManager
	ownerNotifier *email.OwnerNotifier
	metrics       *metrics.Registry
	markdown      *markdown.Renderer
}

// NewContainer creates a new Container with all dependencies wired together.
// Redis is optional: without it the login limiter and auth rate limiter are
// disabled and ticket numbers come from the database counter.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		defer cancel()
		client, err := cache.NewClient(ctx, cfg.Redis.GetAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		c.redis = client
		c.loginLimiter = ratelimit.NewRedisRateLimiter(client, ratelimit.FromLoginLimit(cfg.Auth.LoginLimit))
		c.log.Infow("redis connected", "addr", cfg.Redis.GetAddr())
	} else {
		c.log.Infow("redis not configured, login throttling and auth rate limiting disabled")
	}

	c.repos = newRepositories(c.db, c.log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.jwtService = &jwtServiceAdapter{c.jwtSvc}
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.txManager = db.NewTransactionManager(c.db)
	c.metrics = metrics.NewRegistry()
	c.markdown = markdown.NewRenderer()

	var emailService *email.SMTPEmailService
	if cfg.Email.Enabled() {
		emailService = email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email))
	}
	c.ownerNotifier = email.NewOwnerNotifier(emailService, c.log.Named("notifier"))

	numbers, err := c.newNumberGenerator()
	if err != nil {
		return err
	}
	c.numbers = numbers

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.redis,
		cfg.Server.AuthRateLimit.Requests,
		time.Duration(cfg.Server.AuthRateLimit.WindowSeconds)*time.Second,
		c.log,
	)
	return nil
}

func (c *Container) newNumberGenerator() (ticket.NumberGenerator, error) {
	prefix := c.cfg.Ticket.IDPrefix
	switch c.cfg.Ticket.SequenceBackend {
	case sharedConfig.SequenceBackendRedis:
		if c.redis == nil {
			return nil, errRedisRequired
		}
		return cache.NewRedisNumberGenerator(c.redis, prefix, c.repos.ticketRepo), nil
	default:
		return services.NewDatabaseNumberGenerator(c.db, prefix, c.repos.ticketRepo), nil
	}
}

// Shutdown releases resources opened by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
