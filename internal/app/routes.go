package app

import (
	"github.com/gorilla/mux"
	"github.com/samatva/samatva/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Operators
	r.HandleFunc("/api/operator/current", deps.OperatorHandler.CurrentOperator).Methods("GET")
	r.HandleFunc("/api/operator", deps.OperatorHandler.ListOperators).Methods("GET")
	r.HandleFunc("/api/operator", deps.OperatorHandler.CreateOperator).Methods("POST")
	r.HandleFunc("/api/operator/{operatorId}", deps.OperatorHandler.DeleteOperator).Methods("DELETE")

	// Partners
	r.HandleFunc("/api/partner", deps.PartnerHandler.ListPartners).Methods("GET")
	r.HandleFunc("/api/partner", deps.PartnerHandler.CreatePartner).Methods("POST")
	r.HandleFunc("/api/partner/{partnerId}", deps.PartnerHandler.GetPartner).Methods("GET")
	r.HandleFunc("/api/partner/{partnerId}", deps.PartnerHandler.UpdatePartner).Methods("PUT")
	r.HandleFunc("/api/partner/{partnerId}", deps.PartnerHandler.DeletePartner).Methods("DELETE")

	// Platform users
	r.HandleFunc("/api/platform-user", deps.UserHandler.ListUsers).Methods("GET")
	r.HandleFunc("/api/platform-user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/platform-user/{userId}", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/platform-user/{userId}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Sessions
	r.HandleFunc("/api/session", deps.AssetHandler.ListSessions).Methods("GET")
	r.HandleFunc("/api/session", deps.AssetHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/session/export", deps.ExportHandler.ExportSessions).Methods("GET")
	r.HandleFunc("/api/session/upload-url", deps.AssetHandler.MediaUploadURL).
		Queries("filename", "{filename}").Methods("GET")
	r.HandleFunc("/api/session/{sessionId}/media-url", deps.AssetHandler.MediaDownloadURL).Methods("GET")
	r.HandleFunc("/api/session/{sessionId}", deps.AssetHandler.UpdateSession).Methods("PUT")
	r.HandleFunc("/api/session/{sessionId}", deps.AssetHandler.DeleteSession).Methods("DELETE")

	// Services
	r.HandleFunc("/api/service", deps.AssetHandler.ListServices).Methods("GET")
	r.HandleFunc("/api/service", deps.AssetHandler.CreateService).Methods("POST")
	r.HandleFunc("/api/service/{serviceId}", deps.AssetHandler.UpdateService).Methods("PUT")
	r.HandleFunc("/api/service/{serviceId}", deps.AssetHandler.DeleteService).Methods("DELETE")

	// Programs
	r.HandleFunc("/api/program", deps.ProgramHandler.ListPrograms).Methods("GET")
	r.HandleFunc("/api/program", deps.ProgramHandler.CreateProgram).Methods("POST")
	r.HandleFunc("/api/program/export", deps.ExportHandler.ExportPrograms).Methods("GET")
	r.HandleFunc("/api/program/{programId}", deps.ProgramHandler.GetProgram).Methods("GET")
	r.HandleFunc("/api/program/{programId}", deps.ProgramHandler.UpdateProgram).Methods("PUT")
	r.HandleFunc("/api/program/{programId}", deps.ProgramHandler.DeleteProgram).Methods("DELETE")
	r.HandleFunc("/api/program/{programId}/item", deps.ProgramHandler.GetProgramItems).Methods("GET")

	// Classes
	r.HandleFunc("/api/class", deps.ClassHandler.ListClasses).Methods("GET")
	r.HandleFunc("/api/class", deps.ClassHandler.CreateClass).Methods("POST")
	r.HandleFunc("/api/class/{classId}", deps.ClassHandler.UpdateClass).Methods("PUT")
	r.HandleFunc("/api/class/{classId}", deps.ClassHandler.DeleteClass).Methods("DELETE")

	// Bundles
	r.HandleFunc("/api/bundle", deps.BundleHandler.ListBundles).Methods("GET")
	r.HandleFunc("/api/bundle", deps.BundleHandler.CreateBundle).Methods("POST")
	r.HandleFunc("/api/bundle/{bundleId}", deps.BundleHandler.UpdateBundle).Methods("PUT")
	r.HandleFunc("/api/bundle/{bundleId}", deps.BundleHandler.DeleteBundle).Methods("DELETE")
}
