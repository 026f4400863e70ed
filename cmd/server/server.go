package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	encounterbuilderv1alpha1 "github.com/KirkDiggler/encounter-builder/internal/api/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/auth"
	"github.com/KirkDiggler/encounter-builder/internal/clients/compendium"
	"github.com/KirkDiggler/encounter-builder/internal/config"
	"github.com/KirkDiggler/encounter-builder/internal/errors"
	"github.com/KirkDiggler/encounter-builder/internal/handlers/encounterbuilder/v1alpha1"
	"github.com/KirkDiggler/encounter-builder/internal/orchestrators/encounter"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/clock"
	"github.com/KirkDiggler/encounter-builder/internal/pkg/idgen"
	"github.com/KirkDiggler/encounter-builder/internal/redis"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/combatants"
	"github.com/KirkDiggler/encounter-builder/internal/repositories/sessions"
	"github.com/KirkDiggler/encounter-builder/internal/resolver"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Encounter Builder gRPC server. Settings come from ENCOUNTER_BUILDER_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ENCOUNTER_BUILDER_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (overrides ENCOUNTER_BUILDER_REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	err = redis.Ping(pingCtx, redisClient)
	pingCancel()
	if err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	encounterService, err := buildEncounterService(cfg, redisClient)
	if err != nil {
		return err
	}

	encounterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: encounterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
	)

	encounterbuilderv1alpha1.RegisterEncounterBuilderServiceServer(srv, encounterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(encounterbuilderv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildEncounterService wires the catalog, compendium, resolver and session registry
func buildEncounterService(cfg *config.Config, redisClient redis.Client) (encounter.Service, error) {
	catalog, err := combatants.NewRedis(&combatants.RedisConfig{
		Client: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combatant repository: %w", err)
	}

	compendiumClient, err := compendium.New(&compendium.Config{
		BaseURL:     cfg.CompendiumBaseURL,
		HTTPTimeout: cfg.CompendiumTimeout,
		CacheTTL:    cfg.CompendiumCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create compendium client: %w", err)
	}

	combatantResolver, err := resolver.New(&resolver.Config{
		Catalog:    catalog,
		Compendium: compendiumClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	sessionRegistry, err := sessions.NewInMemory(&sessions.InMemoryConfig{
		Clock: clock.New(),
		TTL:   cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session registry: %w", err)
	}

	authorizer, err := auth.NewMetadataAuthorizer(&auth.MetadataConfig{
		Header:          cfg.RoleHeader,
		PrivilegedRoles: cfg.PrivilegedRoles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer: %w", err)
	}

	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		IDGenerator: idgen.NewUUID("enc"),
		Sessions:    sessionRegistry,
		Catalog:     catalog,
		Resolver:    combatantResolver,
		Authorizer:  authorizer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	return encounterService, nil
}

// logFunc bridges the grpc logging interceptor onto slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
