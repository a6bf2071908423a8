package server

import (
	"flashcards/internal/handler"
	"flashcards/internal/middleware"
	"flashcards/internal/repository"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegisterRoutesは/api/v1配下に全ルートを張る。
// auth以外はbearer必須
func RegisterRoutes(
	e *echo.Echo,
	issuer *usecase.TokenIssuer,
	users repository.UserRepository,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	deckH *handler.DeckHandler,
	cardH *handler.FlashcardHandler,
	studyH *handler.StudyHandler,
) {
	api := e.Group("/api/v1")
	requireAuth := middleware.AuthJWT(issuer, users)

	auth := api.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)
	auth.POST("/logout-all", authH.LogoutAll, requireAuth)

	u := api.Group("/users", requireAuth)
	u.GET("/me", userH.Me)
	u.PUT("/me", userH.UpdateMe)
	u.GET("", userH.List, middleware.AdminOnly())
	u.GET("/:id", userH.Get)
	u.PUT("/:id", userH.Update, middleware.AdminOnly())

	d := api.Group("/decks", requireAuth)
	d.POST("", deckH.Create)
	d.GET("", deckH.List)
	d.GET("/public", deckH.ListPublic)
	d.GET("/:id", deckH.Get)
	d.PUT("/:id", deckH.Update)
	d.DELETE("/:id", deckH.Delete)
	d.POST("/:id/share/:user_id", deckH.Share)

	f := api.Group("/flashcards", requireAuth)
	f.POST("", cardH.Create)
	f.GET("", cardH.List)
	f.GET("/:id", cardH.Get)
	f.PUT("/:id", cardH.Update)
	f.DELETE("/:id", cardH.Delete)

	s := api.Group("/study", requireAuth)
	s.POST("/sessions", studyH.StartSession)
	s.GET("/sessions", studyH.ListSessions)
	s.GET("/sessions/:id", studyH.GetSession)
	s.PUT("/sessions/:id/end", studyH.EndSession)
	s.POST("/records", studyH.RecordAnswer)
	s.GET("/records", studyH.ListRecords)
}
