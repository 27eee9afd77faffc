// Package environment defines the application environment type used to pick
// logging defaults.
//
// Three environments are known: Development, Staging and Production. Parse
// accepts the full names and the short forms "dev", "stage" and "prod",
// case-insensitively. Empty or unknown values map to Development, so a missing
// APP_ENV never breaks startup.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//
//	log := logger.New(logger.WithEnvironment(env, "namer"))
//
//	if env.IsProduction() {
//		// production-only behaviour
//	}
//
// The logger package switches to text output at debug level for Development
// and JSON at info level for Staging and Production.
package environment
