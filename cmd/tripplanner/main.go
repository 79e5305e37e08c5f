// Command tripplanner is a demo/ops wrapper around the trip-planning
// core: it wires configuration, logging, the routing adapter, and a
// best-effort Kafka event publication around a single orchestrator.Plan
// call, and exposes a gRPC health service plus an HTTP health/ready
// mux for the duration of the run — the same operational shape as the
// teacher's services, modeled on driver-service/cmd/main.go.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/draymaster/trip-planner/internal/domain"
	"github.com/draymaster/trip-planner/internal/orchestrator"
	"github.com/draymaster/trip-planner/internal/routing"
	"github.com/draymaster/trip-planner/internal/rules"
	"github.com/draymaster/trip-planner/pkg/config"
	"github.com/draymaster/trip-planner/pkg/events"
	"github.com/draymaster/trip-planner/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Service.Name, cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting trip-planner")

	stopHealth := startHealthServers(cfg, log)
	defer stopHealth()

	adapter := buildAdapter(cfg)
	ruleSet := rules.ByName(cfg.Trip.RuleSet)

	planner := orchestrator.New(
		domain.Location{Latitude: cfg.Trip.CurrentLat, Longitude: cfg.Trip.CurrentLon},
		domain.Location{Latitude: cfg.Trip.PickupLat, Longitude: cfg.Trip.PickupLon},
		domain.Location{Latitude: cfg.Trip.DropoffLat, Longitude: cfg.Trip.DropoffLon},
		ruleSet,
		cfg.Trip.CurrentCycleUsedHours,
		adapter,
		log,
	)

	startTime := time.Now().UTC()
	if cfg.Trip.StartTime != "" {
		if parsed, err := time.Parse(time.RFC3339, cfg.Trip.StartTime); err == nil {
			startTime = parsed
		} else {
			log.WithError(err).Warn("invalid START_TIME, falling back to now")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = logger.ToContext(ctx, log)

	plan, err := planner.Plan(ctx, startTime)
	if err != nil {
		log.WithError(err).Fatal("trip planning failed")
		return
	}

	publishPlanEvent(ctx, cfg, log, plan)

	output, err := json.MarshalIndent(plan.DTO(), "", "  ")
	if err != nil {
		log.WithError(err).Fatal("failed to serialize route plan")
		return
	}
	fmt.Println(string(output))
}

func buildAdapter(cfg *config.Config) routing.Adapter {
	if cfg.Routing.BaseURL == "" {
		return demoAdapter(cfg)
	}
	return routing.NewOSRMAdapter(cfg.Routing.BaseURL, cfg.Routing.Timeout)
}

// demoAdapter returns a StaticAdapter pre-seeded with a leg for the
// configured current/pickup/drop-off triple, used whenever no live
// OSRM endpoint is configured.
func demoAdapter(cfg *config.Config) routing.Adapter {
	current := domain.Location{Latitude: cfg.Trip.CurrentLat, Longitude: cfg.Trip.CurrentLon}
	pickup := domain.Location{Latitude: cfg.Trip.PickupLat, Longitude: cfg.Trip.PickupLon}
	dropOff := domain.Location{Latitude: cfg.Trip.DropoffLat, Longitude: cfg.Trip.DropoffLon}

	return routing.NewStaticAdapter().
		WithLeg(current, pickup, domain.RouteLeg{
			DistanceMiles: 260,
			DurationHours: 4,
			Geometry:      []domain.Location{current, pickup},
		}).
		WithLeg(pickup, dropOff, domain.RouteLeg{
			DistanceMiles: 400,
			DurationHours: 6,
			Geometry:      []domain.Location{pickup, dropOff},
		})
}

func publishPlanEvent(ctx context.Context, cfg *config.Config, log *logger.Logger, plan *domain.RoutePlan) {
	producer := events.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()

	event := events.NewEvent("trip.planned", cfg.Service.Name, plan.DTO())
	if err := producer.Publish(ctx, cfg.Kafka.Topic, event); err != nil {
		log.WithError(err).Warn("failed to publish trip.planned event")
	}
}

// startHealthServers mirrors driver-service/cmd/main.go: a gRPC
// server registering only the standard health service plus
// reflection, and a bare /health and /ready HTTP mux. No domain RPC is
// registered here — the trip-planning request/response surface is
// this repository's out-of-scope HTTP collaborator.
func startHealthServers(cfg *config.Config, log *logger.Logger) func() {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(cfg.Service.Name, grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		log.WithError(err).Warn("grpc health listener unavailable, skipping")
	} else {
		go func() {
			if err := grpcServer.Serve(grpcListener); err != nil {
				log.WithError(err).Warn("grpc health server stopped")
			}
		}()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: mux,
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Warn("http health server stopped")
		}
	}()

	return func() {
		grpcServer.GracefulStop()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}
}
