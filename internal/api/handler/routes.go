package handler

import (
	"net/http"

	"github.com/vfg2006/cvp-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/authenticating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Analysis(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodPost,
			Handler: RunAnalysis(service, cfg),
		},
		{
			Path:    "/v1/analysis/template",
			Method:  http.MethodGet,
			Handler: GetAnalysisTemplate(service),
		},
	}
}
