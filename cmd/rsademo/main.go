// Command rsademo loads an RSA key pair from the key volume, encrypts a message
// with the public key and decrypts it with the private key, printing each step.
//
// Every setting comes from RSA_DEMO_* environment variables or a .env file in
// the working directory, for example:
//
//	RSA_DEMO_VOLUME_ROOT=/media/sd RSA_DEMO_HALT=idle rsademo
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/YaCodeDev/GoYaRSADemo/config"
	"github.com/YaCodeDev/GoYaRSADemo/rsademo"
	"github.com/YaCodeDev/GoYaRSADemo/yaconsole"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := rsademo.DefaultConfig()

	bootstrap := yalogger.NewBaseLogger(nil).NewLogger()
	if err := config.LoadConfigStructFromEnvHandlingError(&cfg, rsademo.EnvPrefix, bootstrap); err != nil {
		bootstrap.Errorf("Failed to load config: %v", err)

		return 1
	}

	log := yalogger.NewBaseLogger(cfg.LoggerConfig()).NewLogger().WithRandomRunID()

	log.WithFields(map[string]any{
		"volume":  cfg.VolumeRoot,
		"padding": cfg.Padding.String(),
		"halt":    cfg.Halt.String(),
	}).Debug("Starting demo")

	console := yaconsole.New(os.Stdout)

	_, err := rsademo.Run(ctx, cfg, rsademo.Deps{
		FS:      afero.NewOsFs(),
		Console: console,
		Log:     log,
	})

	if werr := console.Err(); werr != nil {
		log.Errorf("Console write failed: %v", werr)
	}

	if err != nil {
		log.Errorf("Demo failed: %v", err)
		rsademo.Halt(ctx, cfg.Halt, log)

		return 1
	}

	return 0
}
