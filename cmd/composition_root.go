package cmd

import (
	"log/slog"
	"net/http"
	"time"

	panelhttp "hortifruti/internal/adapters/in/http"
	"hortifruti/internal/adapters/out/notify"
	"hortifruti/internal/adapters/out/rest"
	"hortifruti/internal/adapters/out/storage"
	"hortifruti/internal/core/application/session"
	"hortifruti/internal/core/application/tracking"
	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/application/usecases/queries"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/jobs"
	"hortifruti/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// CompositionRoot wires every adapter and application service once and hands
// out the fully built components the entrypoint mounts.
type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	backend   ports.BackendClient
	store     ports.CredentialStore
	notices   *notify.NoticeCenter
	sessions  *session.Manager
	tracker   *tracking.Tracker
	registry  *prometheus.Registry
	collector *metrics.PrometheusCollector
}

// NewCompositionRoot builds the object graph from config. Construction
// failures are fatal: a panel without its backend client or credential store
// cannot run.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	backend, err := rest.NewClient(
		&http.Client{Timeout: 15 * time.Second}, config.BackendBaseURL, logger)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewFileStore(config.CredentialFilePath)
	if err != nil {
		return nil, err
	}

	notices := notify.NewNoticeCenter(
		notify.Capabilities{Audio: config.AudioEnabled, PushPermission: config.PushEnabled},
		nil, nil, config.NoticeLimit, logger)

	sessions, err := session.NewManager(backend, store, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	tracker, err := tracking.NewTracker(
		queries.NewGetMyDeliveriesQueryHandler(backend, sessions),
		commands.NewUpdateDeliveryStatusCommandHandler(backend, sessions),
		notices,
		collector,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:    config,
		logger:    logger,
		backend:   backend,
		store:     store,
		notices:   notices,
		sessions:  sessions,
		tracker:   tracker,
		registry:  registry,
		collector: collector,
	}, nil
}

// SessionManager returns the session manager.
func (c *CompositionRoot) SessionManager() *session.Manager {
	return c.sessions
}

// Tracker returns the delivery tracker.
func (c *CompositionRoot) Tracker() *tracking.Tracker {
	return c.tracker
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.tracker, c.logger)
}

// CreatePanelServer builds the HTTP server with every handler wired.
func (c *CompositionRoot) CreatePanelServer() *panelhttp.Server {
	perSecond := rate.Limit(c.config.LoginRatePerMinute / 60.0)

	return panelhttp.NewServer(
		c.sessions,
		c.tracker,
		queries.NewGetDeliveriesQueryHandler(c.backend, c.sessions),
		commands.NewAssignCourierCommandHandler(c.backend, c.sessions),
		c.notices,
		c.collector,
		c.registry,
		panelhttp.NewLoginRateLimiter(perSecond, c.config.LoginBurst),
	)
}
