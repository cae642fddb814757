package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spritepay-server/internal/claims"
	kafkaClient "spritepay-server/internal/clients/kafka"
	redisClient "spritepay-server/internal/clients/redis"
	"spritepay-server/internal/config"
	"spritepay-server/internal/events"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/ratelimit"
	"spritepay-server/internal/store"

	authHandler "spritepay-server/internal/auth/handler"
	authProcessor "spritepay-server/internal/auth/processor"
	eligibilityHandler "spritepay-server/internal/eligibility/handler"
	eligibilityProcessor "spritepay-server/internal/eligibility/processor"
	referralHandler "spritepay-server/internal/referral/handler"
	referralProcessor "spritepay-server/internal/referral/processor"
	rewardProcessor "spritepay-server/internal/rewards/processor"
	withdrawalHandler "spritepay-server/internal/withdrawals/handler"
	withdrawalProcessor "spritepay-server/internal/withdrawals/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler        authHandler.Handler
	EligibilityHandler eligibilityHandler.Handler
	ReferralHandler    referralHandler.Handler
	WithdrawalHandler  withdrawalHandler.Handler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Kafka producer
	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	publisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize the claim-marker KV store. Redis when configured, otherwise
	// the in-memory store (single instance only).
	var claimKV claims.Store
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if deps.RedisClient != nil {
		claimKV = claims.NewRedisStore(deps.RedisClient.GetClient())
	} else {
		claimKV = claims.NewMemoryStore()
	}
	tracker := claims.NewTracker(claimKV)

	// Initialize referral processor and handler
	referralProc := referralProcessor.New(&deps.Store, tracker, publisher,
		cfg.Server.WebAppURI, cfg.Server.SignupPath, logger)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, tracker, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, cfg.Auth.AdminEmail, logger)

	// Initialize eligibility processor and handler
	eligibilityProc := eligibilityProcessor.New(&deps.Store, tracker, publisher,
		eligibilityProcessor.Config{
			AdminEmail:        cfg.Auth.AdminEmail,
			FreeCreditsAmount: cfg.Engine.FreeCreditsAmount,
			DenyThreshold:     cfg.Engine.RiskScoreDenyThreshold,
		}, logger)
	deps.EligibilityHandler = eligibilityHandler.New(eligibilityProc, logger)

	// Initialize reward engine, withdrawal processor and handler
	rewardEngine := rewardProcessor.New(&deps.Store, publisher,
		rewardProcessor.Config{MilestoneCredits: cfg.Engine.MilestoneRewardCredits}, logger)
	submitLimiter := ratelimit.New(cfg.Engine.WithdrawalRateLimit,
		time.Duration(cfg.Engine.WithdrawalRateWindowSec)*time.Second)
	withdrawalProc := withdrawalProcessor.New(&deps.Store, &rewardEngine, submitLimiter, publisher, logger)
	deps.WithdrawalHandler = withdrawalHandler.New(withdrawalProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
