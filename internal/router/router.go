// Package router sets up the gin engine and the route tree.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rhizvo/Budget-Planner/internal/controllers/healthz"
	v1 "github.com/rhizvo/Budget-Planner/internal/controllers/v1"
	"github.com/rhizvo/Budget-Planner/internal/httputil"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don't process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don't trust any proxy. We do not process any client IPs,
	// therefore we don't need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed.
//
// Separating this from Config() allows serving the API from a sub-path.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	healthz.RegisterRoutes(group.Group("/healthz"))

	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterBudgetRoutes(apiV1.Group("/budgets"))
	v1.RegisterIncomeRoutes(apiV1.Group("/incomes"))
	v1.RegisterExpenseRoutes(apiV1.Group("/expenses"))
	v1.RegisterSavingsAccountRoutes(apiV1.Group("/savings-accounts"))
	v1.RegisterSavingsTransferRoutes(apiV1.Group("/savings-transfers"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "healthz",
			Version: "version",
			V1:      "v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Budgets          string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	Incomes          string `json:"incomes" example:"https://example.com/api/v1/incomes"`
	Expenses         string `json:"expenses" example:"https://example.com/api/v1/expenses"`
	SavingsAccounts  string `json:"savingsAccounts" example:"https://example.com/api/v1/savings-accounts"`
	SavingsTransfers string `json:"savingsTransfers" example:"https://example.com/api/v1/savings-transfers"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Budgets:          "v1/budgets",
			Incomes:          "v1/incomes",
			Expenses:         "v1/expenses",
			SavingsAccounts:  "v1/savings-accounts",
			SavingsTransfers: "v1/savings-transfers",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
