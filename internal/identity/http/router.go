package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/internal/identity/store"
	"github.com/accessly/authd/pkg/httpx"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/accessly/authd/pkg/slogx"

	_ "github.com/accessly/authd/api/identity" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Profile selects between the two deployed response shapes. Both are valid;
// which one a process speaks is fixed at startup.
type Profile string

const (
	// ProfileMinimal returns {id} on register and a bare token on login.
	ProfileMinimal Profile = "minimal"
	// ProfileRich returns {id,name,email,token} on register and {token}
	// on login, with the token mirrored into the Auth-Token header.
	ProfileRich Profile = "rich"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	profile      Profile
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AccountService *service.AccountService
	TokenService   *service.TokenService
}

func NewRouter(
	verifier jwtx.Verifier,
	profile Profile,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		profile:      profile,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Accessly Identity Service API
//	@version		0.1.0
//	@description	Registers accounts, verifies credentials, and issues signed identity tokens.
//	@description
//	@description				Tokens are HS256-signed JWTs carried in the Auth-Token header.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Auth-Token
//	@description				Identity token issued by the register/login endpoints.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
		Profile:        r.profile,
	}
	loginHandler := &LoginHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
		Profile:        r.profile,
	}
	verifyHandler := &VerifyHandler{TokenService: r.TokenService}

	r.Mux.Handle("POST /v1/auth/register", registerHandler)
	r.Mux.Handle("POST /v1/auth/login", loginHandler)
	r.Mux.Handle("POST /v1/auth/verify", verifyHandler)
}

func (r *Router) registerAccounts() {
	h := &MeHandler{AccountService: r.AccountService}

	// Authenticated endpoint: claims come from the Auth-Token middleware.
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
	)

	r.Mux.Handle("GET /v1/accounts/me", secured)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService))
}
