package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MSSkowron/registrar/internal/dto"
	"github.com/MSSkowron/registrar/internal/service"
	"github.com/MSSkowron/registrar/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

type contextKey string

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = ":3000"
	// DefaultWriteTimeout is the default write timeout for server responses.
	DefaultWriteTimeout = 15 * time.Second
	// DefaultReadTimeout is the default read timeout for incoming requests.
	DefaultReadTimeout = 15 * time.Second
	// DefaultRequestTimeout bounds how long a registration may wait for the store.
	// It must stay below the write timeout so the error response still reaches the client.
	DefaultRequestTimeout = 10 * time.Second
	// DefaultStaticFile is the default HTML file served on the root path.
	DefaultStaticFile = "public/index.html"

	contextKeyReqID = contextKey("reqID")

	// MsgUserRegistered is a http response body message for a successful registration.
	MsgUserRegistered = "User registered successfully"
	// ErrMsgSavingUser prefixes the http response body message for a failed registration.
	ErrMsgSavingUser = "Error saving user"
)

// Server represents a REST server.
type Server struct {
	*http.Server
	userService    service.UserService
	staticFile     string
	requestTimeout time.Duration
	decoder        *schema.Decoder
}

// NewServer creates a new Server instance.
func NewServer(userService service.UserService, opts ...ServerOption) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	server := &Server{
		Server: &http.Server{
			Addr:         DefaultAddress,
			WriteTimeout: DefaultWriteTimeout,
			ReadTimeout:  DefaultReadTimeout,
		},
		userService:    userService,
		staticFile:     DefaultStaticFile,
		requestTimeout: DefaultRequestTimeout,
		decoder:        decoder,
	}

	for _, opt := range opts {
		opt(server)
	}

	server.initRoutes()

	return server
}

// ServerOption is a function signature for providing options to configure the Server.
type ServerOption func(*Server)

// WithAddress is an option to set the server address.
func WithAddress(addr string) ServerOption {
	return func(s *Server) {
		s.Addr = addr
	}
}

// WithReadTimeout is an option to set the read timeout for the server.
func WithReadTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.ReadTimeout = timeout
	}
}

// WithWriteTimeout is an option to set the write timeout for the server.
func WithWriteTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.WriteTimeout = timeout
	}
}

// WithRequestTimeout is an option to set how long a registration may wait for the store.
func WithRequestTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.requestTimeout = timeout
	}
}

// WithStaticFile is an option to set the HTML file served on the root path.
func WithStaticFile(path string) ServerOption {
	return func(s *Server) {
		s.staticFile = path
	}
}

func (s *Server) initRoutes() {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)

	s.Handler = s.logMiddleware(r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.staticFile)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	registerDTO := &dto.UserRegisterDTO{}

	// A malformed body leaves the fields empty; the store rejects the record.
	if err := r.ParseForm(); err != nil {
		logger.Debug(fmt.Sprintf("Failed to parse registration form: %s", err))
	} else if err := s.decoder.Decode(registerDTO, r.PostForm); err != nil {
		logger.Debug(fmt.Sprintf("Failed to decode registration form: %s", err))
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if _, err := s.userService.RegisterUser(ctx, registerDTO); err != nil {
		msg := fmt.Sprintf("%s: %s", ErrMsgSavingUser, err)
		logger.ErrorFields(msg, map[string]any{"request_id": requestID(r.Context())})
		s.respondWithText(w, http.StatusInternalServerError, msg)
		return
	}

	s.respondWithText(w, http.StatusOK, MsgUserRegistered)
}

func (s *Server) respondWithText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(fmt.Sprintf("Failed to respond: %s", err))
	}
}
