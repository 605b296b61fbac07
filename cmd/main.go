package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"

	githubclient "fileanissue/clients/github"
	workplaceclient "fileanissue/clients/workplace"
	"fileanissue/config"
	"fileanissue/core/log"
	"fileanissue/handlers"
	"fileanissue/middleware"
	"fileanissue/services/actions"
	"fileanissue/services/handles"
	"fileanissue/services/tasks"
	githubusecase "fileanissue/usecases/github"
	workplaceusecase "fileanissue/usecases/workplace"
)

type Options struct {
	SkipSubscribe bool   `long:"skip-subscribe" description:"Do not register the Workplace webhook subscription on startup"`
	HandlesFile   string `long:"handles" description:"Path to the GitHub login -> Workplace name mapping (overrides GITHUB_HANDLES_FILE)"`
	EnvFile       string `long:"env-file" description:"Env file to load instead of .env"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Error("❌ Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	var envFiles []string
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}
	cfg, err := config.LoadConfig(envFiles...)
	if err != nil {
		return err
	}
	log.SetLevel(log.ParseLevel(cfg.LogLevel))

	handlesFile := cfg.GitHubConfig.HandlesFile
	if opts.HandlesFile != "" {
		handlesFile = opts.HandlesFile
	}
	handlesService, err := handles.LoadHandlesFile(handlesFile)
	if err != nil {
		return err
	}

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  cfg.AlertConfig.WebhookURL,
		Environment: cfg.Environment,
		AppName:     "fileanissue",
		LogsURL:     cfg.AlertConfig.LogsURL,
	})

	httpClient := &http.Client{Timeout: 30 * time.Second}
	workplaceClient := workplaceclient.NewWorkplaceClient(
		httpClient,
		cfg.WorkplaceConfig.GraphAPIURL,
		cfg.WorkplaceConfig.AccessToken,
		cfg.WorkplaceConfig.AppToken,
	)
	githubClient, err := githubclient.NewGitHubClient(
		httpClient,
		cfg.GitHubConfig.APIURL,
		cfg.GitHubConfig.Token,
		cfg.GitHubConfig.UserAgent,
		cfg.GitHubConfig.Owner,
		cfg.GitHubConfig.RepoName,
	)
	if err != nil {
		return err
	}

	taskRunner := tasks.NewTaskRunner(cfg.ActionWorkers, alertMiddleware.WrapBackgroundTask)
	actionsService := actions.NewActionsService(workplaceClient, githubClient)

	workplaceUseCase := workplaceusecase.NewWorkplaceUseCase(
		workplaceClient,
		actionsService,
		taskRunner,
		cfg.WebhookCallbackURL(),
		cfg.WorkplaceConfig.VerifyToken,
	)
	githubUseCase := githubusecase.NewGitHubUseCase(actionsService, handlesService, taskRunner)

	workplaceHandler := handlers.NewWorkplaceEventsHandler(
		cfg.WorkplaceConfig.AppSecret,
		cfg.WorkplaceConfig.VerifyToken,
		cfg.WorkplaceConfig.RequireSignature,
		workplaceUseCase,
	)
	githubHandler := handlers.NewGitHubEventsHandler(cfg.GitHubConfig.WebhookSecret, githubUseCase)

	router := mux.NewRouter()
	workplaceHandler.SetupEndpoints(router)
	githubHandler.SetupEndpoints(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Error("❌ Failed to write health check response", "error", err)
		}
	}).Methods("GET")

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Hub-Signature", "X-Hub-Signature-256", "X-GitHub-Event"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(middleware.WithDeliveryID(c.Handler(router))),
		ReadHeaderTimeout: 30 * time.Second,
	}

	var subscribe func(net.Addr)
	if opts.SkipSubscribe {
		log.Info("⏭️ Skipping Workplace webhook subscription")
	} else {
		subscribe = func(net.Addr) {
			_ = alertMiddleware.WrapBackgroundTask("EnsureSubscriptions", func() error {
				return workplaceUseCase.EnsureSubscriptions(context.Background())
			})()
		}
	}

	listener, err := listenThenSubscribe(server.Addr, subscribe)
	if err != nil {
		return err
	}

	if err := handleGracefulShutdown(server, listener); err != nil {
		return err
	}

	log.Info("⏳ Draining pending actions", "queued", taskRunner.WaitingQueueSize())
	taskRunner.StopWait()
	alertMiddleware.Wait()
	log.Info("✅ All pending actions finished")
	return nil
}

// listenThenSubscribe binds addr before subscribe runs, since registering the webhook
// makes Workplace call the GET handshake right away.
func listenThenSubscribe(addr string, subscribe func(net.Addr)) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if subscribe != nil {
		go subscribe(listener.Addr())
	}
	return listener, nil
}

func handleGracefulShutdown(server *http.Server, listener net.Listener) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("✅ Listening", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		log.Info("🛑 Shutdown signal received, cleaning up...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("❌ Server shutdown error", "error", err)
		return err
	}

	log.Info("✅ Server stopped gracefully")
	return nil
}
