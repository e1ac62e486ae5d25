package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/hqv2816/storefront-api/configs"
	"github.com/hqv2816/storefront-api/internal/adapter/cache"
	httpadapter "github.com/hqv2816/storefront-api/internal/adapter/http"
	"github.com/hqv2816/storefront-api/internal/adapter/http/middleware"
	"github.com/hqv2816/storefront-api/internal/adapter/kafka"
	"github.com/hqv2816/storefront-api/internal/adapter/memory"
	"github.com/hqv2816/storefront-api/internal/adapter/queue"
	"github.com/hqv2816/storefront-api/internal/adapter/repo"
	"github.com/hqv2816/storefront-api/internal/adapter/rest"
	"github.com/hqv2816/storefront-api/internal/logging"
	"github.com/hqv2816/storefront-api/internal/security"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	log := logging.New("app")

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	tokens := security.NewTokenService(cfg)

	var (
		products usecase.ProductRepo
		orders   usecase.OrderRepo
		users    usecase.UserRepo
		auth     usecase.AuthService
	)

	switch cfg.Store.Driver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			return nil, nil, fmt.Errorf("mysql ping: %w", err)
		}
		cleanups = append(cleanups, func() { _ = db.Close() })

		userRepo := repo.NewMySQLUserRepo(db)
		products = repo.NewMySQLProductRepo(db)
		orders = repo.NewMySQLOrderRepo(db)
		users = userRepo
		auth = security.NewLocalAuthService(tokens, userRepo, userRepo)

	case "rest":
		client := rest.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
		products = rest.NewProductRepo(client)
		orders = rest.NewOrderRepo(client)
		users = rest.NewUserRepo(client)
		auth = rest.NewAuthService(client)

	case "memory":
		userRepo := memory.NewUserRepo()
		products = memory.NewProductRepo()
		orders = memory.NewOrderRepo()
		users = userRepo
		auth = security.NewLocalAuthService(tokens, userRepo, userRepo)

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	// optional Redis read cache in front of the product repo
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		products = cache.NewCachedProductRepo(products, rdb, cfg.Redis.CacheTTL)
	}

	// optional RabbitMQ order-event producer
	var events usecase.OrderEvents
	if cfg.Rabbit.URL != "" {
		conn, err := amqp091.Dial(cfg.Rabbit.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
		}
		cleanups = append(cleanups, func() { _ = conn.Close() })
		ch, err := conn.Channel()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		producer, err := queue.NewRabbitProducer(ch, cfg.Rabbit.Exchange)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		events = producer
	}

	createOrder := usecase.NewCreateOrder(products, orders, events)
	updateOrder := usecase.NewUpdateOrderStatus(orders, events)
	createProduct := usecase.NewCreateProduct(products)
	authenticate := usecase.NewAuthenticateUser(users, auth)
	register := usecase.NewRegisterUser(users)

	// optional Kafka listener for fulfillment status updates
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic != "" {
		if err := startFulfillmentListener(cfg, updateOrder); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	ph := httpadapter.NewProductHandler(createProduct, products)
	oh := httpadapter.NewOrderHandler(createOrder, updateOrder, orders)
	ah := httpadapter.NewAuthHandler(authenticate, register, auth)
	authz := middleware.NewAuthz(tokens)
	router := httpadapter.NewRouter(ph, oh, ah, authz)

	log.Info("storefront-api wired", "store", cfg.Store.Driver,
		"redis", cfg.Redis.Addr != "", "rabbit", cfg.Rabbit.URL != "",
		"kafka", len(cfg.Kafka.Brokers) > 0)

	return &App{Router: router}, cleanup, nil
}

func startFulfillmentListener(cfg configs.Config, updater *usecase.UpdateOrderStatus) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewFulfillmentHandler(updater)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle, logging.New("kafka"))

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logging.New("kafka").Error("fulfillment consumer stopped", "err", err)
		}
	}()
	return nil
}
