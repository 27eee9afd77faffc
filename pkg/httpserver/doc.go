// Package httpserver runs an http.Handler with graceful shutdown and
// structured logging via slog.
//
// Run blocks until the supplied context is cancelled or the process receives
// os.Interrupt or syscall.SIGTERM. It then calls http.Server.Shutdown with
// Config.ShutdownTimeout as the deadline, so in-flight requests can finish.
//
// # Configuration
//
// Config carries `env` tags and is usually filled by the config package:
//
//	HTTP_ADDR              listen address (default ":8080")
//	HTTP_READ_TIMEOUT      read timeout (default 10s)
//	HTTP_WRITE_TIMEOUT     write timeout (default 10s)
//	HTTP_SHUTDOWN_TIMEOUT  graceful shutdown deadline (default 5s)
//
// New also fills an empty address and a non-positive shutdown timeout with the
// defaults, so a zero Config is usable in tests.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped with error", logger.Error(err))
//	}
//
// # Error Handling
//
// Listener failures are joined with ErrStart and shutdown failures with
// ErrShutdown:
//
//	if errors.Is(err, httpserver.ErrStart) {
//		// port in use, bad address, ...
//	}
//
// A clean shutdown after cancellation returns nil.
package httpserver
