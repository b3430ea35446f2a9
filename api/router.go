package api

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/config"
	_ "github.com/MaximZagorsk/polls-drf-api/docs"
	"github.com/MaximZagorsk/polls-drf-api/internal/auth"
	"github.com/MaximZagorsk/polls-drf-api/internal/handlers"
	"github.com/MaximZagorsk/polls-drf-api/internal/middleware"
)

// API holds the API dependencies
type API struct {
	authn           middleware.AuthenticationMiddleware
	versionHandler  *handlers.VersionHandler
	tokenHandler    *handlers.TokenHandler
	pollHandler     *handlers.PollHandler
	questionHandler *handlers.QuestionHandler
	choiceHandler   *handlers.ChoiceHandler
	responseHandler *handlers.ResponseHandler
}

// NewAPI creates a new API instance
func NewAPI(db *gorm.DB) *API {
	cfg := config.Get()
	manager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.SessionDuration)
	return &API{
		authn:           middleware.AuthenticationMiddleware{DB: db, Auth: manager},
		versionHandler:  handlers.NewVersionHandler(cfg),
		tokenHandler:    handlers.NewTokenHandler(cfg, db, manager),
		pollHandler:     handlers.NewPollHandler(cfg, db),
		questionHandler: handlers.NewQuestionHandler(cfg, db),
		choiceHandler:   handlers.NewChoiceHandler(cfg, db),
		responseHandler: handlers.NewResponseHandler(cfg, db),
	}
}

// CreateMux creates and configures the HTTP mux
func (api *API) CreateMux() *http.ServeMux {
	mux := http.NewServeMux()
	api.setupRoutes(mux)
	return mux
}

// setupRoutes configures all the routes.
func (api *API) setupRoutes(mux *http.ServeMux) {
	admin := api.authn.AdminRequired
	credential := api.authn.CredentialRequired
	identify := api.authn.Identify

	// Version route
	mux.HandleFunc("/v", api.versionHandler.GetVersion)

	// Credential issuance
	mux.HandleFunc("POST /token", api.tokenHandler.PostToken)
	mux.HandleFunc("POST /anonim-token", api.tokenHandler.PostAnonimToken)

	// Poll routes. The listing of every poll is an admin view; the active
	// listing is public; the detail shows admins everything and everyone
	// else active polls only.
	mux.HandleFunc("GET /polls", admin(api.pollHandler.GetPolls))
	mux.HandleFunc("GET /active-polls", api.pollHandler.GetActivePolls)
	mux.HandleFunc("POST /poll", admin(api.pollHandler.PostPoll))
	mux.HandleFunc("GET /poll/{id}", identify(api.pollHandler.GetPollById))
	mux.HandleFunc("PUT /poll/{id}", admin(api.pollHandler.PutPollById))
	mux.HandleFunc("DELETE /poll/{id}", admin(api.pollHandler.DeletePollById))

	// Question routes
	mux.HandleFunc("POST /question", admin(api.questionHandler.PostQuestion))
	mux.HandleFunc("GET /question/{id}", identify(api.questionHandler.GetQuestionById))
	mux.HandleFunc("PUT /question/{id}", admin(api.questionHandler.PutQuestionById))
	mux.HandleFunc("DELETE /question/{id}", admin(api.questionHandler.DeleteQuestionById))

	// Choice routes
	mux.HandleFunc("POST /choice", admin(api.choiceHandler.PostChoice))
	mux.HandleFunc("GET /choice/{id}", admin(api.choiceHandler.GetChoiceById))
	mux.HandleFunc("PUT /choice/{id}", admin(api.choiceHandler.PutChoiceById))
	mux.HandleFunc("DELETE /choice/{id}", admin(api.choiceHandler.DeleteChoiceById))

	// Response routes - anonymous credential required
	mux.HandleFunc("POST /text-choice", credential(api.responseHandler.PostTextResponse))
	mux.HandleFunc("POST /single-choice", credential(api.responseHandler.PostSingleChoiceResponse))
	mux.HandleFunc("POST /multiple-choice", credential(api.responseHandler.PostMultipleChoicesResponse))
	mux.HandleFunc("GET /finished-polls", credential(api.responseHandler.GetFinishedPolls))
	mux.HandleFunc("GET /unfinished-polls", credential(api.responseHandler.GetUnfinishedPolls))

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// fallback route - must be last because it matches all routes.
	mux.HandleFunc("/", fallBack)
}

// ApplyMiddleware applies middleware to a handler
func ApplyMiddleware(handler http.Handler) http.Handler {
	return middleware.LoggingMiddleware(
		middleware.CORSMiddleware(handler),
	)
}

func fallBack(w http.ResponseWriter, r *http.Request) {
	gecho.NotFound(w).Send()
}
