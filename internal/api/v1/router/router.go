package router

import (
	"context"
	"net/http"
	"strings"

	"rewind/internal/api/v1/handler"
	"rewind/internal/config"
	"rewind/internal/middleware"
	"rewind/internal/pubsub"
	"rewind/internal/repository"
	"rewind/internal/service"

	_ "rewind/docs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// New wires the full HTTP surface: DB pool, storage client, publisher,
// repositories, services and handlers. The returned pool is owned by the
// caller and must be closed on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, error) {
	ctx := context.Background()

	dsn := cfg.DBConnectionString
	// In a development environment, ensure SSL is disabled for local
	// testing. In production the connection string ships with the correct
	// SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		dsn += dsnSeparator(dsn) + "sslmode=disable"
	}
	// Non-development environments sit behind a transaction pooler, so use
	// the simple query protocol to avoid server-side prepared statements.
	if cfg.Environment != "development" && !strings.Contains(dsn, "prefer_simple_protocol") {
		dsn += dsnSeparator(dsn) + "prefer_simple_protocol=true"
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, err
	}
	poolCfg.MaxConns = 25
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Resolve the JWT secret, falling back to Secret Manager when it is not
	// in the environment.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		secrets, err := service.NewSecretService(ctx, cfg.GCPProjectID)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		jwtSecret, err = secrets.GetSecret(ctx, cfg.JWTSecretName)
		secrets.Close()
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	// Storage client (Supabase S3-compatible endpoint)
	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})

	validate := validator.New(validator.WithRequiredStructEnabled())

	// Event publisher is optional: without a GCP project the gate still
	// works, it just publishes nothing.
	var publisher pubsub.Publisher
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		publisher = p
	} else {
		logger.Warn().Msg("GCP_PROJECT_ID not set, usage events disabled")
	}

	// Repositories & services & handlers
	quotaRepo := repository.NewQuotaRepo(pool)
	legacyRepo := repository.NewLegacyUsageRepo(pool)
	eraRepo := repository.NewEraRepo(pool)
	transformationRepo := repository.NewTransformationRepo(pool)

	gateSvc := service.NewGateService(quotaRepo, legacyRepo, publisher, cfg, logger)
	transformSvc := service.NewTransformService(transformationRepo, eraRepo, gateSvc, publisher, cfg.PubSubUsageTopic, logger)
	uploadSvc := service.NewUploadService(s3Client, cfg.S3Bucket)

	gateHandler := handler.NewGateHandler(gateSvc, validate, logger)
	eraHandler := handler.NewEraHandler(eraRepo)
	transformationHandler := handler.NewTransformationHandler(transformSvc, validate, logger)
	uploadHandler := handler.NewUploadHandler(uploadSvc, validate)
	healthHandler := handler.NewHealthHandler(pool)

	authMiddleware := middleware.RequireAuth(jwtSecret)
	optionalAuthMiddleware := middleware.OptionalAuth(jwtSecret)

	apiV1Mux := http.NewServeMux()
	gateHandler.RegisterRoutes(apiV1Mux)
	eraHandler.RegisterRoutes(apiV1Mux)
	transformationHandler.RegisterRoutes(apiV1Mux, optionalAuthMiddleware, authMiddleware)
	uploadHandler.RegisterRoutes(apiV1Mux, optionalAuthMiddleware)
	healthHandler.RegisterRoutes(apiV1Mux)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	mux.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "Swagger documentation unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), pool, nil
}

func dsnSeparator(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return "&"
		}
		return "?"
	}
	return " "
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		// Only remove the middleware if it exists; presigned URL operations
		// may inspect the stack without it.
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
