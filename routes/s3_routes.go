package routes

import (
	"premadehub_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes registers avatar upload/read presigned URL routes under
// /api/s3
func RegisterS3Routes(router *mux.Router) {
	s3Router := router.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/generate-presigned-url", controllers.GeneratePresignedURLHandler).Methods("POST")
	s3Router.HandleFunc("/presigned-read-url", controllers.GetPresignedReadURLHandler).Methods("POST")
}
