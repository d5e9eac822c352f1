package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/config"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/mcpadapter"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/setup"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so logs always go to stderr.
	log.Logger = logger.New(cfg.Log.Level, "console")
	appLogger := log.Logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close(context.Background())

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "product-ai",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_image",
		Description: "Classify a base64 encoded image with MobileNet and return the top ImageNet labels",
	}, mcpadapter.NewClassifyImageHandler(deps.Classifier))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_review",
		Description: "Run sentiment analysis on a customer review",
	}, mcpadapter.NewAnalyzeReviewHandler(deps.Sentiment))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_products",
		Description: "Find up to 10 products whose name contains a keyword, ignoring case",
	}, mcpadapter.NewRecommendProductsHandler(deps.Products))
	return server
}
