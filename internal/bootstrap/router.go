package bootstrap

import (
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/specforge-io/specforge-backend/internal/api/http"
	"github.com/specforge-io/specforge-backend/internal/api/http/middleware"
	authmw "github.com/specforge-io/specforge-backend/internal/auth/middleware"
	bphttp "github.com/specforge-io/specforge-backend/internal/blueprint/http"
	"github.com/specforge-io/specforge-backend/internal/blueprint/service"
	dochttp "github.com/specforge-io/specforge-backend/internal/documents/http"
	docrepo "github.com/specforge-io/specforge-backend/internal/documents/repository"
	"github.com/specforge-io/specforge-backend/internal/llm"
	"github.com/specforge-io/specforge-backend/internal/results"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool  // optional
	Redis       *redis.Client  // optional
	AuthClient  *fbauth.Client // optional
	Generator   llm.Generator  // optional
	GenOptions  llm.Options
	GenTimeout  time.Duration
	RateRPS     float64
	RateBurst   int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	if dep.RateRPS <= 0 {
		dep.RateRPS = 10
	}
	if dep.RateBurst <= 0 {
		dep.RateBurst = 20
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimit(dep.RateRPS, dep.RateBurst))

	var resultStore *results.Store
	if dep.Redis != nil {
		resultStore = results.NewStore(dep.Redis)
	}

	var saver service.DocumentSaver
	var docs *docrepo.Repo
	if dep.DB != nil {
		docs = docrepo.NewRepo(dep.DB)
		saver = docs
	}

	genSvc := service.NewGenerationService(dep.Generator, dep.GenOptions, dep.GenTimeout, resultStore, saver)
	bpHandler := bphttp.NewHandler(genSvc, resultStore)

	blueprints := api.Group("/blueprints")
	blueprints.Use(authmw.OptionalUser(dep.AuthClient))
	bpHandler.Register(blueprints)

	resultsGroup := api.Group("/results")
	resultsGroup.Use(authmw.OptionalUser(dep.AuthClient))
	bpHandler.RegisterResults(resultsGroup)

	if docs != nil {
		docsGroup := api.Group("/documents")
		docsGroup.Use(authmw.RequireUser(dep.AuthClient))
		dochttp.NewHandler(docs).Register(docsGroup)
	}

	return r
}
