// Package server exposes a LibraryManager over JSON POST endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/log"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Response is the envelope of every endpoint. Code is 0 on success.
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

type Options struct {
	// Token, when set, must be sent as "Authorization: Bearer <token>"
	Token string
}

var jsonNamesOnce sync.Once

// New returns a gin engine with every route registered
func New(manager *data.LibraryManager, opts Options) *gin.Engine {
	// binding errors name fields the way clients send them
	jsonNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			submit.RegisterJSONNames(v)
		}
	})

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())
	if opts.Token != "" {
		r.Use(BearerAuth(opts.Token))
	}
	h := &handlers{manager: manager}
	setupRoutes(r, h)
	return r
}

func setupRoutes(r *gin.Engine, h *handlers) {
	lib := r.Group("/library")
	lib.POST("/load", h.loadLibrary)
	lib.POST("/save", h.saveLibrary)

	r.POST("/resources/list", h.listResources)
	r.POST("/topics/list", h.listTopics)

	threads := r.Group("/threads")
	threads.POST("/list", h.listThreads)
	threads.POST("/vote", h.voteThread)
	threads.POST("/create", h.createThread)

	plans := r.Group("/plans")
	plans.POST("/list", h.listPlans)
	plans.POST("/create", h.createPlan)
	plans.POST("/add_task", h.addTask)
	plans.POST("/toggle_task", h.togglePlanTask)

	r.POST("/dashboard/get", h.getDashboard)
	r.POST("/profile/get", h.getProfile)

	schedule := r.Group("/schedule")
	schedule.POST("/list", h.listSchedule)
	schedule.POST("/toggle", h.toggleSchedule)
}

// Serve runs the engine on addr until ctx is done
func Serve(ctx context.Context, addr string, engine *gin.Engine) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Infof(ctx, "serving on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Data: data})
}

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var bad *badRequest
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.As(err, &bad):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Errorf(c.Request.Context(), "%s: %v", c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, Response{Code: status, Msg: err.Error()})
}

type badRequest struct {
	err error
}

func (e *badRequest) Error() string { return e.err.Error() }
func (e *badRequest) Unwrap() error { return e.err }
