package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/essence/internal/config"
	"github.com/example/essence/internal/handlers"
	"github.com/example/essence/internal/middleware"
	"github.com/example/essence/internal/models"
	"github.com/example/essence/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config,
	sessions *services.SessionStore, storage *services.StorageService,
	events *services.EventPublisher) {

	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	fragranceHandler := handlers.NewFragranceHandler(db)
	companyHandler := handlers.NewCompanyHandler(db)
	noteHandler := handlers.NewNoteHandler(db)
	reviewHandler := handlers.NewReviewHandler(db, events)
	wishlistHandler := handlers.NewWishlistHandler(db)
	voteHandler := handlers.NewVoteHandler(db)
	similarHandler := handlers.NewSimilarHandler(db)
	uploadHandler := handlers.NewUploadHandler(storage)

	requireAuth := middleware.AuthMiddleware(cfg, sessions)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)
	requireUser := middleware.RequireRole(models.RoleUser, models.RoleAdmin)

	app.Use(middleware.CSRFMiddleware(cfg))

	// Auth
	auth := app.Group("/api/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", requireAuth, authHandler.Me)
	auth.Get("/csrf-token", authHandler.CSRFToken)

	// Fragrance catalog
	fragrance := app.Group("/fragrance")
	fragrance.Get("/all", fragranceHandler.ListFragrances)
	fragrance.Get("/all/:id", fragranceHandler.GetFragrance)
	fragrance.Post("/new-fragrance", requireAuth, requireAdmin, fragranceHandler.CreateFragrance)
	fragrance.Patch("/all/:id", requireAuth, requireAdmin, fragranceHandler.UpdateFragrance)
	fragrance.Delete("/all/:id", requireAuth, requireAdmin, fragranceHandler.DeleteFragrance)

	fragrance.Post("/upload", requireAuth, requireAdmin, uploadHandler.UploadPicture)

	// Similar fragrances
	fragrance.Get("/all/:id/similar", similarHandler.ListSimilar)
	fragrance.Post("/all/:id/similar", requireAuth, requireUser, similarHandler.AddSimilar)
	fragrance.Delete("/all/:id/similar/:similar_id", requireAuth, requireUser, similarHandler.RemoveSimilar)

	// Reviews
	fragrance.Post("/reviews", requireAuth, requireUser, reviewHandler.CreateReview)
	fragrance.Get("/reviews/mine", requireAuth, requireUser, reviewHandler.ListMyReviews)
	fragrance.Patch("/reviews/:id", requireAuth, requireUser, reviewHandler.UpdateReview)
	fragrance.Delete("/reviews/:id", requireAuth, requireUser, reviewHandler.DeleteReview)

	// Wishlist
	fragrance.Post("/wishlist", requireAuth, requireUser, wishlistHandler.AddToWishlist)
	fragrance.Get("/wishlist", requireAuth, requireUser, wishlistHandler.ListWishlist)
	fragrance.Delete("/wishlist/:id", requireAuth, requireUser, wishlistHandler.RemoveFromWishlist)

	// Attribute votes
	vote := fragrance.Group("/vote", requireAuth, requireUser)
	vote.Post("/gender", voteHandler.VoteGender)
	vote.Post("/season", voteHandler.VoteSeason)
	vote.Post("/sillage", voteHandler.VoteSillage)
	vote.Post("/longevity", voteHandler.VoteLongevity)
	vote.Post("/price-value", voteHandler.VotePriceValue)

	// Companies, notes, note groups
	api := app.Group("/api")

	companies := api.Group("/companies")
	companies.Get("/", companyHandler.ListCompanies)
	companies.Get("/:id", companyHandler.GetCompany)
	companies.Post("/", requireAuth, requireAdmin, companyHandler.CreateCompany)
	companies.Put("/:id", requireAuth, requireAdmin, companyHandler.UpdateCompany)
	companies.Delete("/:id", requireAuth, requireAdmin, companyHandler.DeleteCompany)

	noteGroups := api.Group("/note-groups")
	noteGroups.Get("/", noteHandler.ListNoteGroups)
	noteGroups.Post("/", requireAuth, requireAdmin, noteHandler.CreateNoteGroup)
	noteGroups.Delete("/:id", requireAuth, requireAdmin, noteHandler.DeleteNoteGroup)

	notes := api.Group("/notes")
	notes.Get("/", noteHandler.ListNotes)
	notes.Post("/", requireAuth, requireAdmin, noteHandler.CreateNote)
	notes.Delete("/:id", requireAuth, requireAdmin, noteHandler.DeleteNote)
}
