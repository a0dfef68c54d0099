package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	authAPI "puzzle_place/internal/api/auth"
	eventAPI "puzzle_place/internal/api/event"
	gameAPI "puzzle_place/internal/api/game"
	historyAPI "puzzle_place/internal/api/history"
	"puzzle_place/internal/config"
	"puzzle_place/internal/config/env"
	"puzzle_place/internal/middleware"
	"puzzle_place/internal/repository"
	"puzzle_place/internal/repository/auth_repo"
	"puzzle_place/internal/repository/event_repo"
	"puzzle_place/internal/repository/game_repo"
	"puzzle_place/internal/repository/history_repo"
	"puzzle_place/internal/repository/leaderboard_repo"
	"puzzle_place/internal/repository/user_repo"
	"puzzle_place/internal/service"
	authsrv "puzzle_place/internal/service/auth"
	eventsrv "puzzle_place/internal/service/event"
	gamesrv "puzzle_place/internal/service/game"
	historysrv "puzzle_place/internal/service/history"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Auth bits
	jwtConfig config.JWTConfig
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// Event bits
	eventRepo repository.EventRepository
	eventServ service.EventService
	eventHand *eventAPI.Handler

	// Game bits
	gameCfg  config.GameConfig
	gameRepo repository.GameRepository
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// History bits
	historyRepo     repository.HistoryRepository
	leaderboardRepo repository.LeaderboardRepository
	historyServ     service.HistoryService
	historyHand     *historyAPI.Handler

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

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		err := client.Ping(ctx).Err()
		if err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
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

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}

		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) EventRepo(ctx context.Context) repository.EventRepository {
	if sp.eventRepo == nil {
		sp.eventRepo = event_repo.NewEventRepository(sp.DBClient(ctx))
	}
	return sp.eventRepo
}

func (sp *ServiceProvider) GameRepo(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx))
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) LeaderboardRepo(ctx context.Context) repository.LeaderboardRepository {
	if sp.leaderboardRepo == nil {
		sp.leaderboardRepo = leaderboard_repo.NewLeaderboardRepository(sp.RedisClient(ctx))
	}
	return sp.leaderboardRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authsrv.NewAuthService(
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTConfig(),
			sp.TXManager(ctx),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) EventService(ctx context.Context) service.EventService {
	if sp.eventServ == nil {
		sp.eventServ = eventsrv.NewEventService(
			sp.GameCfg(),
			sp.EventRepo(ctx),
			sp.GameRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.eventServ
}

func (sp *ServiceProvider) EventHandler(ctx context.Context) *eventAPI.Handler {
	if sp.eventHand == nil {
		sp.eventHand = eventAPI.NewHandler(eventAPI.HandlerDeps{
			Serv: sp.EventService(ctx),
		})
	}
	return sp.eventHand
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = gamesrv.NewGameService(
			sp.GameCfg(),
			sp.GameRepo(ctx),
			sp.EventRepo(ctx),
			sp.HistoryRepo(ctx),
			sp.LeaderboardRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = historysrv.NewHistoryService(
			sp.HistoryRepo(ctx),
			sp.LeaderboardRepo(ctx),
		)
	}
	return sp.historyServ
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{
			Serv: sp.HistoryService(ctx),
		})
	}
	return sp.historyHand
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
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		authMW := middleware.NewAuth(sp.JWTConfig())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Event endpoints
		eventHandler := sp.EventHandler(ctx)
		r.Route("/events", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/", eventHandler.Create)
			rr.Get("/", eventHandler.List)
			rr.Get("/{eventID}", eventHandler.Get)
			rr.Put("/{eventID}", eventHandler.Update)
			rr.Delete("/{eventID}", eventHandler.Delete)
			rr.Post("/{eventID}/prizes", eventHandler.AddPrize)
			rr.Get("/{eventID}/prizes", eventHandler.ListPrizes)
			rr.Delete("/{eventID}/prizes/{prizeID}", eventHandler.DeletePrize)
		})

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/start", gameHandler.Start)
			rr.Post("/open-case", gameHandler.OpenCase)
			rr.Get("/banker-offer/{gameID}", gameHandler.BankerOffer)
			rr.Post("/accept-offer", gameHandler.AcceptOffer)
			rr.Post("/finish", gameHandler.Finish)
		})

		// History and leaderboard endpoints
		historyHandler := sp.HistoryHandler(ctx)
		r.Get("/history", historyHandler.Recent)
		r.Get("/leaderboard/{eventID}", historyHandler.Leaderboard)

		r.Handle("/metrics", promhttp.Handler())

		sp.router = r
	}

	return sp.router
}
