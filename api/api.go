package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/meridianhq/meridian/api/handlers"
	"github.com/meridianhq/meridian/api/middleware"
	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/identity"
	"github.com/meridianhq/meridian/quality"
)

type Dependencies struct {
	Logger            log.Logger
	AssetService      *asset.Service
	QualityService    *quality.Service
	Authorizer        identity.Authorizer
	IdentityHeaderKey string
}

// RegisterRoutes wires every HTTP route of the service onto router.
// All /v1beta1 routes sit behind the identity middleware; the heartbeat
// does not.
func RegisterRoutes(router *mux.Router, deps Dependencies) {
	assetHandler := handlers.NewAssetHandler(deps.Logger, deps.AssetService)
	qualityHandler := handlers.NewQualityHandler(deps.Logger, deps.QualityService)
	exportHandler := handlers.NewExportHandler(deps.Logger, deps.AssetService)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.Path("/ping").
		Methods(http.MethodGet, http.MethodHead).
		HandlerFunc(handlers.Heartbeat)

	v1Beta1SubRouter := router.PathPrefix("/v1beta1").Subrouter()
	v1Beta1SubRouter.Use(middleware.Authorize(deps.Authorizer, deps.IdentityHeaderKey, deps.Logger))

	setupV1Beta1AssetRoutes("/assets", v1Beta1SubRouter, assetHandler)

	v1Beta1SubRouter.Path("/quality/issues").
		Methods(http.MethodGet).
		HandlerFunc(qualityHandler.GetIssues)

	v1Beta1SubRouter.Path("/exports/{format}").
		Methods(http.MethodGet).
		HandlerFunc(exportHandler.Download)
}

func setupV1Beta1AssetRoutes(baseURL string, router *mux.Router, ah *handlers.AssetHandler) {
	router.Path(baseURL).
		Methods(http.MethodGet).
		HandlerFunc(ah.GetAll)

	router.Path(baseURL).
		Methods(http.MethodPost).
		HandlerFunc(ah.Create)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodGet).
		HandlerFunc(ah.GetByID)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodPut).
		HandlerFunc(ah.Replace)

	router.Path(baseURL + "/{id}").
		Methods(http.MethodDelete).
		HandlerFunc(ah.Delete)
}
