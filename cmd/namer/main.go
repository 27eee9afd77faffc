// Command namer prints a generated filename or serves the naming HTTP API.
//
//	namer -name "Quarterly Report" -ext pdf -strategy slug
//	namer -strategy hash -opt algorithm=sha1 -opt length=12 -name avatar
//	namer -serve -addr :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/namer/pkg/config"
	"github.com/dmitrymomot/namer/pkg/environment"
	"github.com/dmitrymomot/namer/pkg/httpserver"
	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namer"
	"github.com/dmitrymomot/namer/pkg/namerhttp"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"namer"`
	HTTP    httpserver.Config
}

// optionFlags collects repeated -opt key=value flags.
type optionFlags namer.Options

func (o optionFlags) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

// Set parses key=value. A bare key or "key=null" sets an explicit null.
func (o optionFlags) Set(s string) error {
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("option key is empty")
	}
	if !found || value == "null" {
		o[key] = nil
		return nil
	}
	o[key] = value
	return nil
}

func main() {
	var (
		name     = flag.String("name", "", "original filename without extension (default from config)")
		ext      = flag.String("ext", "", "file extension (default from config)")
		strategy = flag.String("strategy", "", "naming strategy (default from config)")
		file     = flag.String("file", "", "uploaded filename to derive name and extension from")
		envFile  = flag.String("env-file", "", "optional .env file to load")
		serve    = flag.Bool("serve", false, "serve the HTTP API instead of printing a name")
		addr     = flag.String("addr", "", "listen address for -serve (overrides HTTP_ADDR)")
		opts     = optionFlags{}
	)
	flag.Var(opts, "opt", "strategy option as key=value, repeatable; key=null resets to default")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	cfg, err := namer.LoadConfig(envFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	var app appConfig
	config.MustLoad(&app)

	env := environment.Parse(app.Env)
	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(env, app.Service),
	)
	logger.SetAsDefault(log)

	n := namer.New(cfg, namer.WithLogger(log))

	if *serve {
		if *addr != "" {
			app.HTTP.Addr = *addr
		}
		srv := httpserver.New(app.HTTP, log)
		if err := srv.Run(context.Background(), namerhttp.Router(n, log)); err != nil {
			log.Error("server stopped with error", logger.Error(err))
			os.Exit(1)
		}
		return
	}

	var makeOpts []namer.MakeOption
	if *name != "" {
		makeOpts = append(makeOpts, namer.WithName(*name))
	}
	if *ext != "" {
		makeOpts = append(makeOpts, namer.WithExtension(*ext))
	}
	if *strategy != "" {
		s, known := namer.ParseStrategy(*strategy)
		if !known {
			log.Debug("unknown strategy requested", logger.Strategy(*strategy), slog.Any("known", namer.Strategies()))
		}
		makeOpts = append(makeOpts, namer.WithStrategy(s))
	}
	if len(opts) > 0 {
		makeOpts = append(makeOpts, namer.WithOptions(namer.Options(opts)))
	}

	var result string
	if *file != "" {
		result, err = n.MakeFromFilename(*file, makeOpts...)
	} else {
		result, err = n.Make(makeOpts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate filename: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}
