package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	experienceHandler "portfolio-backend/internal/domains/experience/handler"
	experienceRepo "portfolio-backend/internal/domains/experience/repository"
	experienceService "portfolio-backend/internal/domains/experience/service"
	guestbookHandler "portfolio-backend/internal/domains/guestbook/handler"
	guestbookRepo "portfolio-backend/internal/domains/guestbook/repository"
	guestbookService "portfolio-backend/internal/domains/guestbook/service"
	messageHandler "portfolio-backend/internal/domains/message/handler"
	messageRepo "portfolio-backend/internal/domains/message/repository"
	messageService "portfolio-backend/internal/domains/message/service"
	orderingHandler "portfolio-backend/internal/domains/ordering/handler"
	orderingRepo "portfolio-backend/internal/domains/ordering/repository"
	orderingService "portfolio-backend/internal/domains/ordering/service"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	profileRepo "portfolio-backend/internal/domains/profile/repository"
	profileService "portfolio-backend/internal/domains/profile/service"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
	socialHandler "portfolio-backend/internal/domains/social/handler"
	socialRepo "portfolio-backend/internal/domains/social/repository"
	socialService "portfolio-backend/internal/domains/social/service"
	userHandler "portfolio-backend/internal/domains/user/handler"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Invalidator cache.Invalidator
	Storage     storage.BlobStore
	JWTManager  *jwt.Manager

	// Repositories
	UserRepo       userRepo.UserRepository
	ProfileRepo    profileRepo.ProfileRepository
	SocialRepo     socialRepo.SocialRepository
	ProjectRepo    projectRepo.ProjectRepository
	SkillRepo      skillRepo.SkillRepository
	ExperienceRepo experienceRepo.ExperienceRepository
	MessageRepo    messageRepo.MessageRepository
	GuestbookRepo  guestbookRepo.GuestbookRepository
	OrderingRepo   orderingRepo.OrderingRepository

	// Services
	UserService       userService.UserService
	ProfileService    profileService.ProfileService
	SocialService     socialService.SocialService
	ProjectService    projectService.ProjectService
	SkillService      skillService.SkillService
	ExperienceService experienceService.ExperienceService
	MessageService    messageService.MessageService
	GuestbookService  guestbookService.GuestbookService
	OrderingService   orderingService.OrderingService

	// Handlers
	UserHandler       *userHandler.UserHandler
	ProfileHandler    *profileHandler.ProfileHandler
	SocialHandler     *socialHandler.SocialHandler
	ProjectHandler    *projectHandler.ProjectHandler
	SkillHandler      *skillHandler.SkillHandler
	ExperienceHandler *experienceHandler.ExperienceHandler
	MessageHandler    *messageHandler.MessageHandler
	GuestbookHandler  *guestbookHandler.GuestbookHandler
	OrderingHandler   *orderingHandler.OrderingHandler
}

// NewContainer builds and wires the whole application.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			// Cached reads degrade to the database; invalidation becomes
			// a no-op against an empty cache. Not fatal.
			logger.Error("redis connection failed, continuing without warm cache", err)
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache
	c.Invalidator = cache.NewInvalidator(redisCache)

	store, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	logger.Info("object storage ready", map[string]interface{}{"bucket": c.Config.MinIO.Bucket})

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.ProfileRepo = profileRepo.NewPostgresProfileRepository(pool, c.Cache)
	c.SocialRepo = socialRepo.NewPostgresSocialRepository(pool, c.Cache)
	c.ProjectRepo = projectRepo.NewPostgresProjectRepository(pool, c.Cache)
	c.SkillRepo = skillRepo.NewPostgresSkillRepository(pool, c.Cache)
	c.ExperienceRepo = experienceRepo.NewPostgresExperienceRepository(pool, c.Cache)
	c.MessageRepo = messageRepo.NewPostgresMessageRepository(pool)
	c.GuestbookRepo = guestbookRepo.NewPostgresGuestbookRepository(pool, c.Cache)
	c.OrderingRepo = orderingRepo.NewPostgresOrderingRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.Storage, c.Invalidator)
	c.SocialService = socialService.NewSocialService(c.SocialRepo, c.Invalidator)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, c.Storage, c.Invalidator)
	c.SkillService = skillService.NewSkillService(c.SkillRepo, c.Invalidator)
	c.ExperienceService = experienceService.NewExperienceService(c.ExperienceRepo, c.Invalidator)
	c.MessageService = messageService.NewMessageService(c.MessageRepo)
	c.GuestbookService = guestbookService.NewGuestbookService(c.GuestbookRepo, c.UserRepo, c.Invalidator)
	c.OrderingService = orderingService.NewOrderingService(c.OrderingRepo, c.Invalidator)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.SocialHandler = socialHandler.NewSocialHandler(c.SocialService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ExperienceHandler = experienceHandler.NewExperienceHandler(c.ExperienceService)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.GuestbookHandler = guestbookHandler.NewGuestbookHandler(c.GuestbookService)
	c.OrderingHandler = orderingHandler.NewOrderingHandler(c.OrderingService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database connections closed", nil)
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis", err)
			} else {
				logger.Info("redis connections closed", nil)
			}
		}
	}
}
