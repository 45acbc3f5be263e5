package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/foodlytics/foodlytics/internal/app/api/server"
	"github.com/foodlytics/foodlytics/internal/app/service/analytics"
	"github.com/foodlytics/foodlytics/internal/app/service/history"
	"github.com/foodlytics/foodlytics/internal/platform/db"
	"github.com/foodlytics/foodlytics/pkg/config"
	"github.com/foodlytics/foodlytics/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	analytics.Module,
	history.Module,
)
