package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	goahttp "goa.design/goa/v3/http"
	httpmdlwr "goa.design/goa/v3/http/middleware"
	"goa.design/goa/v3/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authgen "edgecam/gen/auth"
	camera "edgecam/gen/camera"
	authsvr "edgecam/gen/http/auth/server"
	camerasvr "edgecam/gen/http/camera/server"
	healthsvr "edgecam/gen/http/health/server"
	rostersvr "edgecam/gen/http/roster/server"
	health "edgecam/gen/health"
	roster "edgecam/gen/roster"

	"edgecam/internal/auth"
	authmw "edgecam/internal/middleware"
)

// handleHTTPServer configures and starts the HTTP server on the given URL,
// mounting the goa-generated admin/health/camera/roster services plus the
// two raw routes (/recognise, /onvif_notifications) on the same mux. It
// shuts down the server if any error is received on the error channel.
func handleHTTPServer(
	ctx context.Context,
	u *url.URL,
	healthEndpoints *health.Endpoints,
	authEndpoints *authgen.Endpoints,
	cameraEndpoints *camera.Endpoints,
	rosterEndpoints *roster.Endpoints,
	authenticator *auth.Authenticator,
	recogniseHandler http.Handler,
	onvifHandler http.Handler,
	wg *sync.WaitGroup,
	errc chan error,
	logger *log.Logger,
	debug bool,
) {
	adapter := middleware.NewLogger(logger)

	dec := goahttp.RequestDecoder
	enc := goahttp.ResponseEncoder

	mux := goahttp.NewMuxer()

	eh := errorHandler(logger)
	healthServer := healthsvr.New(healthEndpoints, mux, dec, enc, eh, nil)
	authServer := authsvr.New(authEndpoints, mux, dec, enc, eh, nil)
	cameraServer := camerasvr.New(cameraEndpoints, mux, dec, enc, eh, nil)
	rosterServer := rostersvr.New(rosterEndpoints, mux, dec, enc, eh, nil)

	// Protect the admin surface; health stays open so liveness/readiness
	// probes need no token.
	authMiddleware := authmw.AuthMiddleware(authenticator)
	cameraServer.Use(authMiddleware)
	rosterServer.Use(authMiddleware)

	if debug {
		servers := goahttp.Servers{healthServer, authServer, cameraServer, rosterServer}
		servers.Use(httpmdlwr.Debug(mux, nil))
	}

	healthsvr.Mount(mux, healthServer)
	authsvr.Mount(mux, authServer)
	camerasvr.Mount(mux, cameraServer)
	rostersvr.Mount(mux, rosterServer)

	mux.Handle("POST", "/recognise", recogniseHandler.ServeHTTP)
	mux.Handle("POST", "/onvif_notifications", onvifHandler.ServeHTTP)
	mux.Handle("GET", "/metrics", promhttp.Handler().ServeHTTP)

	var handler http.Handler = mux
	handler = httpmdlwr.Log(adapter)(handler)
	handler = httpmdlwr.RequestID()(handler)

	srv := &http.Server{Addr: u.Host, Handler: handler, ReadHeaderTimeout: 60 * time.Second}
	for _, m := range healthServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range authServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range cameraServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	for _, m := range rosterServer.Mounts {
		logger.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
	}
	logger.Printf("HTTP \"POST\" mounted on /recognise")
	logger.Printf("HTTP \"POST\" mounted on /onvif_notifications")

	wg.Add(1)
	go func() {
		defer wg.Done()

		go func() {
			logger.Printf("HTTP server listening on %q", u.Host)
			errc <- srv.ListenAndServe()
		}()

		<-ctx.Done()
		logger.Printf("shutting down HTTP server at %q", u.Host)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("failed to shutdown: %v", err)
		}
	}()
}

// errorHandler returns a function that writes and logs the given error,
// tagging it with the request id for correlation.
func errorHandler(logger *log.Logger) func(context.Context, http.ResponseWriter, error) {
	return func(ctx context.Context, w http.ResponseWriter, err error) {
		id, _ := ctx.Value(middleware.RequestIDKey).(string)
		_, _ = w.Write([]byte("[" + id + "] encoding: " + err.Error()))
		logger.Printf("[%s] ERROR: %s", id, err.Error())
	}
}
