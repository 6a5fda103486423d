package main

import (
	"context"
	"log"

	"solidadmin/internal/domain/activity"
	"solidadmin/internal/domain/revenue"
	"solidadmin/internal/domain/rewards"
	"solidadmin/internal/domain/wallet"
	"solidadmin/internal/infrastructure/chain"
	"solidadmin/internal/infrastructure/firebase"
	"solidadmin/internal/infrastructure/postgres"
	httphandlers "solidadmin/internal/interfaces/http"
	"solidadmin/internal/interfaces/monitor"
	"solidadmin/internal/shared/auth"
	"solidadmin/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler     *httphandlers.AuthHandler
	UserHandler     *httphandlers.UserHandler
	ActivityHandler *httphandlers.ActivityHandler
	WalletHandler   *httphandlers.WalletHandler
	CampaignHandler *httphandlers.CampaignHandler
	ContentHandler  *httphandlers.ContentHandler
	RewardsHandler  *httphandlers.RewardsHandler
	RevenueHandler  *httphandlers.RevenueHandler

	// Auth
	JWT *auth.JWT

	// Monitor job inputs
	UserRepo      *postgres.UserRepository
	WalletService *wallet.Service
	ChainClient   chain.ClientInterface
	WalletWatches []chain.WalletWatch
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Connect to database and apply migrations
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize repositories
	adminRepo := postgres.NewAdminRepository(db)
	userRepo := postgres.NewUserRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	walletRepo := postgres.NewWalletRepository(db)
	campaignRepo := postgres.NewCampaignRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	rewardsRepo := postgres.NewRewardsRepository(db)
	revenueRepo := postgres.NewRevenueRepository(db)

	// Initialize domain services
	grouper := activity.NewGrouper(cfg.Activity.StuckThreshold)
	walletService := wallet.NewService(walletRepo)
	rewardsService := rewards.NewService(rewardsRepo, cfg.Rewards.CacheTTL)
	revenueService := revenue.NewService(revenueRepo)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	var firebaseClient httphandlers.FirebaseVerifier
	if cfg.Firebase.CredentialsFile != "" {
		fb, err := firebase.NewClient(ctx, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Printf("Warning: Failed to initialize Firebase auth: %v", err)
		} else {
			firebaseClient = fb
			log.Println("Firebase token login enabled")
		}
	}

	// Chain RPC client and wallet watch list (for the monitor)
	chainClient := chain.NewClient()
	var watches []chain.WalletWatch
	if cfg.Monitor.WatchFile != "" {
		watches, err = chain.LoadWatches(cfg.Monitor.WatchFile)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Printf("Loaded %d wallet watches from %s", len(watches), cfg.Monitor.WatchFile)
	}

	// Initialize handlers
	authHandler := httphandlers.NewAuthHandler(adminRepo, jwt, firebaseClient, cfg.TLS.Enabled)
	userHandler := httphandlers.NewUserHandler(userRepo, activityRepo, grouper)
	activityHandler := httphandlers.NewActivityHandler(activityRepo)
	walletHandler := httphandlers.NewWalletHandler(walletService)
	campaignHandler := httphandlers.NewCampaignHandler(campaignRepo)
	contentHandler := httphandlers.NewContentHandler(contentRepo)
	rewardsHandler := httphandlers.NewRewardsHandler(rewardsService)
	revenueHandler := httphandlers.NewRevenueHandler(revenueService)

	return &Dependencies{
		DB:              db,
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		ActivityHandler: activityHandler,
		WalletHandler:   walletHandler,
		CampaignHandler: campaignHandler,
		ContentHandler:  contentHandler,
		RewardsHandler:  rewardsHandler,
		RevenueHandler:  revenueHandler,
		JWT:             jwt,
		UserRepo:        userRepo,
		WalletService:   walletService,
		ChainClient:     chainClient,
		WalletWatches:   watches,
	}, nil
}

// MonitorJobs builds the job batch the scheduler runs on each tick.
func (d *Dependencies) MonitorJobs(ctx context.Context) ([]monitor.Job, error) {
	jobs := make([]monitor.Job, 0, len(d.WalletWatches)+1)
	for _, watch := range d.WalletWatches {
		jobs = append(jobs, monitor.NewWalletSnapshotJob(watch, d.ChainClient, d.WalletService))
	}
	jobs = append(jobs, monitor.NewCohortSnapshotJob(d.UserRepo))
	return jobs, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
