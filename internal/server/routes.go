package server

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API surface. Everything under /api requires a
// live session.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(s.SessionAuth())

	businesses := api.Group("/businesses")
	businesses.POST("", s.CreateBusiness)
	businesses.GET("", s.ListBusinesses)
	businesses.GET("/:businessId", s.GetBusiness)
	businesses.PATCH("/:businessId", s.UpdateBusiness)

	posters := businesses.Group("/:businessId/posters")
	posters.GET("/templates", s.ListPosterTemplates)
	posters.GET("/preview", s.PreviewPoster)
	posters.GET("/download.pdf", s.DownloadPosterPDF)
	posters.GET("/download.png", s.DownloadPosterPNG)
}
