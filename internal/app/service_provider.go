package app

import (
	"context"
	"math/rand"
	"time"

	authAPI "crypto_casino/internal/api/auth"
	coinflipAPI "crypto_casino/internal/api/coinflip"
	lootboxAPI "crypto_casino/internal/api/lootbox"
	marketAPI "crypto_casino/internal/api/market"
	rouletteAPI "crypto_casino/internal/api/roulette"
	slotAPI "crypto_casino/internal/api/slot"
	walletAPI "crypto_casino/internal/api/wallet"
	"crypto_casino/internal/config"
	"crypto_casino/internal/config/env"
	"crypto_casino/internal/middleware"
	"crypto_casino/internal/pricefeed"
	"crypto_casino/internal/repository"
	"crypto_casino/internal/repository/auth_repo"
	"crypto_casino/internal/repository/inventory_repo"
	"crypto_casino/internal/repository/user_repo"
	"crypto_casino/internal/repository/wallet_repo"
	"crypto_casino/internal/service"
	"crypto_casino/internal/service/auth"
	"crypto_casino/internal/service/coinflip"
	"crypto_casino/internal/service/lootbox"
	"crypto_casino/internal/service/market"
	"crypto_casino/internal/service/roulette"
	"crypto_casino/internal/service/slot"
	"crypto_casino/internal/service/wallet"
	"crypto_casino/pkg/weighted"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const configYAMLPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Randomness
	rnd weighted.Source

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Wallet bits
	walletCfg  config.WalletConfig
	walletRepo repository.WalletRepository
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Slot bits
	slotCfg  config.SlotConfig
	slotServ service.SlotService
	slotHand *slotAPI.Handler

	// Roulette bits
	rouletteCfg  config.RouletteConfig
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Coinflip bits
	coinflipServ service.CoinFlipService
	coinflipHand *coinflipAPI.Handler

	// Lootbox bits
	casesCfg    config.CasesConfig
	invRepo     repository.InventoryRepository
	lootboxServ service.LootboxService
	lootboxHand *lootboxAPI.Handler

	// Market bits
	priceFeedCfg config.PriceFeedConfig
	priceFeed    pricefeed.PriceFeed
	marketServ   service.MarketService
	marketHand   *marketAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient() *redis.Client {
	if sp.redisClient == nil {
		sp.redisClient = redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

// Rnd - общий источник случайности всех игр
func (sp *ServiceProvider) Rnd() weighted.Source {
	if sp.rnd == nil {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		sp.rnd = r.Float64
	}
	return sp.rnd
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) WalletRepo(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) InventoryRepo(ctx context.Context) repository.InventoryRepository {
	if sp.invRepo == nil {
		sp.invRepo = inventory_repo.NewInventoryRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.invRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.WalletRepo(ctx),
			sp.JWTCfg(),
			sp.WalletCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.WalletRepo(ctx))
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.SlotCfg(), sp.WalletRepo(ctx), sp.TXManager(ctx), sp.Rnd())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		cfg, err := env.NewRouletteConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(sp.RouletteCfg(), sp.WalletRepo(ctx), sp.TXManager(ctx), sp.Rnd())
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService(ctx)})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) CoinFlipService(ctx context.Context) service.CoinFlipService {
	if sp.coinflipServ == nil {
		sp.coinflipServ = coinflip.NewCoinFlipService(sp.WalletRepo(ctx), sp.TXManager(ctx), sp.Rnd())
	}
	return sp.coinflipServ
}

func (sp *ServiceProvider) CoinFlipHandler(ctx context.Context) *coinflipAPI.Handler {
	if sp.coinflipHand == nil {
		sp.coinflipHand = coinflipAPI.NewHandler(coinflipAPI.HandlerDeps{Serv: sp.CoinFlipService(ctx)})
	}
	return sp.coinflipHand
}

func (sp *ServiceProvider) CasesCfg() config.CasesConfig {
	if sp.casesCfg == nil {
		cfg, err := env.NewCasesConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get cases config: " + err.Error())
		}
		sp.casesCfg = cfg
	}
	return sp.casesCfg
}

func (sp *ServiceProvider) LootboxService(ctx context.Context) service.LootboxService {
	if sp.lootboxServ == nil {
		sp.lootboxServ = lootbox.NewLootboxService(
			sp.CasesCfg(),
			sp.WalletCfg(),
			sp.WalletRepo(ctx),
			sp.InventoryRepo(ctx),
			sp.TXManager(ctx),
			sp.Rnd(),
		)
	}
	return sp.lootboxServ
}

func (sp *ServiceProvider) LootboxHandler(ctx context.Context) *lootboxAPI.Handler {
	if sp.lootboxHand == nil {
		sp.lootboxHand = lootboxAPI.NewHandler(lootboxAPI.HandlerDeps{Serv: sp.LootboxService(ctx)})
	}
	return sp.lootboxHand
}

func (sp *ServiceProvider) PriceFeedCfg() config.PriceFeedConfig {
	if sp.priceFeedCfg == nil {
		cfg, err := env.NewPriceFeedConfig()
		if err != nil {
			panic("failed to get price feed config: " + err.Error())
		}
		sp.priceFeedCfg = cfg
	}
	return sp.priceFeedCfg
}

func (sp *ServiceProvider) PriceFeed() pricefeed.PriceFeed {
	if sp.priceFeed == nil {
		sp.priceFeed = pricefeed.NewCoinGeckoFeed(sp.PriceFeedCfg(), sp.RedisClient())
	}
	return sp.priceFeed
}

func (sp *ServiceProvider) MarketService(ctx context.Context) service.MarketService {
	if sp.marketServ == nil {
		sp.marketServ = market.NewMarketService(sp.PriceFeed(), sp.WalletCfg(), sp.WalletRepo(ctx), sp.TXManager(ctx))
	}
	return sp.marketServ
}

func (sp *ServiceProvider) MarketHandler(ctx context.Context) *marketAPI.Handler {
	if sp.marketHand == nil {
		sp.marketHand = marketAPI.NewHandler(marketAPI.HandlerDeps{Serv: sp.MarketService(ctx)})
	}
	return sp.marketHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints: открытые
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Prometheus endpoint: открытый
		r.Handle("/metrics", promhttp.Handler())

		// Защищенные endpoints: JWT + лимит запросов по IP
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Use(middleware.RateLimit(sp.RedisClient(), 30, time.Minute))

			walletHandler := sp.WalletHandler(ctx)
			rr.Get("/wallet", walletHandler.Wallets)
			rr.Post("/wallet/deposit", walletHandler.Deposit)

			rr.Post("/casino/slot-machine", sp.SlotHandler(ctx).Spin)
			rr.Post("/casino/roulette", sp.RouletteHandler(ctx).Spin)
			rr.Post("/casino/coin-flip", sp.CoinFlipHandler(ctx).Flip)

			lootboxHandler := sp.LootboxHandler(ctx)
			rr.Route("/lootbox", func(rrr chi.Router) {
				rrr.Post("/open-case", lootboxHandler.OpenCase)
				rrr.Post("/sell", lootboxHandler.Sell)
				rrr.Get("/eq", lootboxHandler.Inventory)
				rrr.Get("/cases", lootboxHandler.Cases)
			})

			marketHandler := sp.MarketHandler(ctx)
			rr.Route("/market", func(rrr chi.Router) {
				rrr.Get("/price/{coin}", marketHandler.Price)
				rrr.Post("/buy/{coin}", marketHandler.Buy)
				rrr.Post("/sell/{coin}", marketHandler.Sell)
			})
		})

		sp.router = r
	}

	return sp.router
}
