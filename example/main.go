// Minimal consumer of the graphmail library: reads configuration from the
// environment, lists the newest messages and the mailbox folders.
package main

import (
	"context"
	"log"

	"github.com/opentracing/opentracing-go"

	"github.com/customeros/graphmail/config"
	"github.com/customeros/graphmail/internal/logger"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/services"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Config initialization failed: %v", err)
	}

	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	tracer, closer, err := tracing.NewJaegerTracer(cfg.Tracing, appLogger)
	if err != nil {
		log.Fatalf("Could not initialize jaeger tracer: %s", err.Error())
	}
	defer closer.Close()
	opentracing.SetGlobalTracer(tracer)

	svcs, err := services.InitServices(cfg, appLogger)
	if err != nil {
		log.Fatalf("Service initialization failed: %v", err)
	}

	ctx := context.Background()

	messages, err := svcs.MailService.ReadEmails(ctx, 10)
	if err != nil {
		appLogger.Fatalf("failed to read emails: %v", err)
	}
	for _, message := range messages {
		appLogger.Infof("message %s: %s", message.ID, message.Subject)
	}

	folders, err := svcs.MailService.ListFolders(ctx)
	if err != nil {
		appLogger.Fatalf("failed to list folders: %v", err)
	}
	for _, folder := range folders {
		appLogger.Infof("folder %s: %s (%d unread)", folder.ID, folder.DisplayName, folder.UnreadItemCount)
	}
}
