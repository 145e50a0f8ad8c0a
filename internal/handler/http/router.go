package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fluorine7/Holylight-marine/internal/auth"
	"github.com/Fluorine7/Holylight-marine/internal/service"
	"github.com/Fluorine7/Holylight-marine/pkg/health"
	"github.com/Fluorine7/Holylight-marine/pkg/middleware"
)

// publicCacheMaxAge is the Cache-Control max-age for public catalog reads.
const publicCacheMaxAge = 60

// NewRouter creates a chi router with all CMS routes registered.
func NewRouter(
	categoryService *service.CategoryService,
	productService *service.ProductService,
	brandService *service.BrandService,
	newsService *service.NewsService,
	contentService *service.ContentService,
	jwtManager *auth.JWTManager,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig middleware.CORSConfig,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Tracing("marinecms"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("marinecms"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	categoryHandler := NewCategoryHandler(categoryService, logger)
	productHandler := NewProductHandler(productService, logger)
	brandHandler := NewBrandHandler(brandService, logger)
	newsHandler := NewNewsHandler(newsService, logger)
	bannerHandler := NewBannerHandler(contentService, logger)
	partnerHandler := NewPartnerHandler(contentService, logger)
	infoHandler := NewCompanyInfoHandler(contentService, logger)

	// Public read endpoints for the storefront.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CacheControl(publicCacheMaxAge))

		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{idOrSlug}", categoryHandler.GetCategory)
		r.Get("/categories/{id}/path", categoryHandler.GetCategoryPath)
		r.Get("/categories/{id}/children", categoryHandler.GetCategoryChildren)

		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{idOrSlug}", productHandler.GetProduct)

		r.Get("/brands", brandHandler.ListBrands)
		r.Get("/brands/{idOrSlug}", brandHandler.GetBrand)

		r.Get("/news", newsHandler.ListNews)
		r.Get("/news/{idOrSlug}", newsHandler.GetNews)

		r.Get("/banners", bannerHandler.ListBanners)
		r.Get("/partners", partnerHandler.ListPartners)

		r.Get("/company-info", infoHandler.ListCompanyInfo)
		r.Get("/company-info/{section}", infoHandler.GetCompanyInfo)
	})

	// Token validator that bridges to the internal JWTManager.
	tokenValidator := func(token string) (*middleware.Claims, error) {
		claims, err := jwtManager.Verify(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}, nil
	}

	// Admin endpoints: every mutation and every list that exposes
	// inactive or draft rows requires an admin token.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(tokenValidator))
		r.Use(middleware.RequireRole("admin"))

		r.Get("/categories", categoryHandler.ListAllCategories)
		r.Post("/categories", categoryHandler.CreateCategory)
		r.Put("/categories/{id}", categoryHandler.UpdateCategory)
		r.Delete("/categories/{id}", categoryHandler.DeleteCategory)
		r.Get("/categories/{id}/delete-check", categoryHandler.CheckCategoryDelete)

		r.Get("/products", productHandler.ListAllProducts)
		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{id}", productHandler.UpdateProduct)
		r.Delete("/products/{id}", productHandler.DeleteProduct)

		r.Get("/brands", brandHandler.ListAllBrands)
		r.Post("/brands", brandHandler.CreateBrand)
		r.Put("/brands/{id}", brandHandler.UpdateBrand)
		r.Delete("/brands/{id}", brandHandler.DeleteBrand)

		r.Get("/news", newsHandler.ListAllNews)
		r.Post("/news", newsHandler.CreateNews)
		r.Put("/news/{id}", newsHandler.UpdateNews)
		r.Delete("/news/{id}", newsHandler.DeleteNews)

		r.Get("/banners", bannerHandler.ListAllBanners)
		r.Get("/banners/{id}", bannerHandler.GetBanner)
		r.Post("/banners", bannerHandler.CreateBanner)
		r.Put("/banners/{id}", bannerHandler.UpdateBanner)
		r.Delete("/banners/{id}", bannerHandler.DeleteBanner)

		r.Get("/partners", partnerHandler.ListAllPartners)
		r.Get("/partners/{id}", partnerHandler.GetPartner)
		r.Post("/partners", partnerHandler.CreatePartner)
		r.Put("/partners/{id}", partnerHandler.UpdatePartner)
		r.Delete("/partners/{id}", partnerHandler.DeletePartner)

		r.Put("/company-info", infoHandler.UpsertCompanyInfo)
	})

	return r
}
