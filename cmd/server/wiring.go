package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applicantservice "naturalize/internal/applicant/service"
	eligibilityservice "naturalize/internal/eligibility/service"
	"naturalize/internal/gate"
	gatemetrics "naturalize/internal/gate/metrics"
	intakehandler "naturalize/internal/intake/handler"
	lockoutmetrics "naturalize/internal/lockout/metrics"
	lockoutservice "naturalize/internal/lockout/service"
	"naturalize/internal/platform/config"
	platformmetrics "naturalize/internal/platform/metrics"
	"naturalize/internal/platform/postgres"
	platformredis "naturalize/internal/platform/redis"
	presencemetrics "naturalize/internal/presence/metrics"
	presenceservice "naturalize/internal/presence/service"
	profilestore "naturalize/internal/profile/store"
	recordstore "naturalize/internal/records/store"
	"naturalize/pkg/platform/audit"
	auditkafka "naturalize/pkg/platform/audit/kafka"
	auditpublisher "naturalize/pkg/platform/audit/publisher"
	auditmemory "naturalize/pkg/platform/audit/store/memory"
	auditpostgres "naturalize/pkg/platform/audit/store/postgres"
	"naturalize/pkg/platform/httputil"
	"naturalize/pkg/platform/middleware/identity"
	"naturalize/pkg/platform/middleware/requesttime"
)

const (
	auditBufferSize      = 1024
	requestTimeout       = 30 * time.Second
	kafkaEnsureTopicWait = 10 * time.Second
)

// infra holds the process-wide connections. Any of them may be nil when the
// matching config is empty.
type infra struct {
	db     *sql.DB
	redis  *platformredis.Client
	kafka  *auditkafka.Publisher
	audits *auditpublisher.Publisher
	log    *slog.Logger
}

func openInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{log: log}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	in.db = db
	if db != nil {
		applied, err := postgres.Migrate(db)
		if err != nil {
			in.Close()
			return nil, err
		}
		log.Info("database migrations applied", "count", applied)
	}

	rdb, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close()
		return nil, err
	}
	in.redis = rdb

	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.kafka = kp
		topicCtx, cancel := context.WithTimeout(ctx, kafkaEnsureTopicWait)
		err = kp.EnsureTopic(topicCtx, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor)
		cancel()
		if err != nil {
			// Events still reach the local audit store.
			log.Warn("kafka audit topic unavailable", "topic", cfg.Kafka.AuditTopic, "error", err)
		}
	}

	var auditStore auditpublisher.Store = auditmemory.NewInMemoryStore()
	if db != nil {
		auditStore = auditpostgres.New(db)
	}
	in.audits = auditpublisher.NewPublisher(auditStore, auditpublisher.WithAsyncBuffer(auditBufferSize))
	return in, nil
}

func (in *infra) auditPublisher() audit.Publisher {
	if in.kafka == nil {
		return in.audits
	}
	return audit.Fanout{in.audits, in.kafka}
}

// Close releases connections in reverse order of opening.
func (in *infra) Close() {
	if in.audits != nil {
		in.audits.Close()
	}
	if in.kafka != nil {
		in.kafka.Close()
	}
	if in.redis != nil {
		if err := in.redis.Close(); err != nil {
			in.log.Warn("failed to close redis", "error", err)
		}
	}
	if in.db != nil {
		if err := in.db.Close(); err != nil {
			in.log.Warn("failed to close database", "error", err)
		}
	}
}

func (in *infra) health(ctx context.Context) error {
	var errs []error
	if in.db != nil {
		if err := in.db.PingContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("postgres: %w", err))
		}
	}
	if in.redis != nil {
		if err := in.redis.Health(ctx); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	if in.kafka != nil {
		if err := in.kafka.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("kafka: %w", err))
		}
	}
	return errors.Join(errs...)
}

func profileBackend(cfg config.Config, in *infra) (profilestore.Store, error) {
	switch cfg.Profile.Backend {
	case config.ProfileBackendPostgres:
		if in.db == nil {
			return nil, errors.New("postgres profile backend selected but database is not configured")
		}
		return profilestore.NewPostgres(in.db), nil
	case config.ProfileBackendRedis:
		if in.redis == nil {
			return nil, errors.New("redis profile backend selected but redis is not configured")
		}
		return profilestore.NewRedis(in.redis.Client), nil
	default:
		return profilestore.NewInMemory(), nil
	}
}

type app struct {
	router http.Handler
}

func buildApp(cfg config.Config, in *infra, log *slog.Logger) (*app, error) {
	auditPub := in.auditPublisher()

	backend, err := profileBackend(cfg, in)
	if err != nil {
		return nil, err
	}
	profiles := profilestore.NewCached(backend)

	var records recordstore.Store = recordstore.NewInMemory()
	if in.db != nil {
		records = recordstore.NewPostgres(in.db)
	}

	httpMetrics := platformmetrics.New()

	lockouts, err := lockoutservice.New(profiles,
		lockoutservice.WithLogger(log),
		lockoutservice.WithAuditPublisher(auditPub),
		lockoutservice.WithMetrics(lockoutmetrics.New()),
	)
	if err != nil {
		return nil, err
	}

	applicants, err := applicantservice.New(profiles, records,
		applicantservice.WithLogger(log),
		applicantservice.WithAuditPublisher(auditPub),
		applicantservice.WithCounter(httpMetrics),
	)
	if err != nil {
		return nil, err
	}

	assessor, err := eligibilityservice.New(lockouts, applicants, records,
		eligibilityservice.WithLogger(log),
		eligibilityservice.WithAuditPublisher(auditPub),
	)
	if err != nil {
		return nil, err
	}

	presence, err := presenceservice.New(applicants, records,
		presenceservice.WithLogger(log),
		presenceservice.WithMetrics(presencemetrics.New()),
		presenceservice.WithLongTripDays(cfg.Presence.LongTripDays),
	)
	if err != nil {
		return nil, err
	}

	gateMiddleware := gate.NewMiddleware(
		gate.NewPolicy(cfg.Gate.Restricted, cfg.Gate.AlwaysAllowed, cfg.Gate.RedirectTo),
		lockouts,
		gate.WithLogger(log),
		gate.WithMetrics(gatemetrics.New()),
		gate.WithAuditPublisher(auditPub),
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(identity.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(identity.Applicant)
	r.Use(profilestore.RequestCacheMiddleware)
	r.Use(httpMetrics.Middleware)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(gateMiddleware.Handler)

	r.Handle("/metrics", platformmetrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := in.health(req.Context()); err != nil {
			log.WarnContext(req.Context(), "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	intakehandler.New(lockouts, assessor, presence, applicants, cfg.Server.AdminToken, log).Register(r)

	return &app{router: r}, nil
}
