package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/alice"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/config"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Yandex Alice webhook",
	Long: `Start the HTTP server that answers Yandex Dialogs webhook requests.
Configuration comes from the environment (optionally via a .env file):
ADDR, ENV and SSAU_BASE_URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadServer()
		logger := newLogger(cfg.Environment)
		defer logger.Sync()

		if cfg.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		opts := []scraper.Option{scraper.WithLogger(logger)}
		if cfg.BaseURL != "" {
			opts = append(opts, scraper.WithClient(scraper.NewClientWithBaseURL(cfg.BaseURL)))
		}
		svc := scraper.NewService(opts...)

		handler := alice.NewHandler(svc, logger)
		router := alice.NewRouter(handler, logger)

		logger.Info("starting webhook server", zap.String("addr", cfg.Addr))
		return router.Run(cfg.Addr)
	},
}

func newLogger(env string) *zap.Logger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
