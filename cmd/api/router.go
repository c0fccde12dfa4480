package api

import (
	"net/http"

	authDelivery "notevault-backend/internal/auth/delivery"
	authUsecase "notevault-backend/internal/auth/usecase"
	noteDelivery "notevault-backend/internal/note/delivery"
	noteUsecase "notevault-backend/internal/note/usecase"
	"notevault-backend/pkg/config"
	"notevault-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, noteUc noteUsecase.NoteUsecase, tokens *token.Service, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg)
	noteHandler := noteDelivery.NewNoteHandler(noteUc)

	requireAuth := authDelivery.AuthMiddleware(tokens)

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
			user.GET("/logout", requireAuth, authHandler.Logout)
			user.GET("/getUserDetails", requireAuth, authHandler.GetUser)
			user.POST("/updateFullName", requireAuth, authHandler.UpdateFullName)
			user.POST("/updatePassword", requireAuth, authHandler.UpdatePassword)
			user.POST("/deleteUserAccount", requireAuth, authHandler.DeleteAccount)
			user.GET("/getNewAccessToken", authHandler.RefreshAccessToken)
			user.POST("/forgotPassword", authHandler.ForgotPassword)
			user.POST("/resetPassword/:resetPasswordToken", authHandler.ResetPassword)
		}

		// Note routes (protected)
		note := api.Group("/note")
		note.Use(requireAuth)
		{
			note.POST("/addNewNote", noteHandler.AddNewNote)
			note.GET("/getAllNotes", noteHandler.GetAllNotes)
			note.POST("/getNote", noteHandler.GetNote)
			note.POST("/updateNote", noteHandler.UpdateNote)
			note.POST("/deleteNote", noteHandler.DeleteNote)
		}
	}
}
