package server

import (
	"fmt"

	"example/storefront/internal/config"
	"example/storefront/internal/kvstore"
	"example/storefront/internal/logger"

	"github.com/go-sql-driver/mysql"
)

// OpenStore opens the key/value store selected by cfg.Driver
func OpenStore(cfg config.Config) (*kvstore.Store, error) {
	logger.Log.Debugw("Initializing store", "driver", cfg.Driver)

	var dsn string
	switch cfg.Driver {
	case "sqlite3":
		dsn = cfg.StorePath
	case "mysql":
		dsn = mysqlDSN(cfg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	store, err := kvstore.Open(cfg.Driver, dsn, cfg.Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if cfg.Driver == "mysql" {
		logger.Log.Infow("Store connection established", "driver", cfg.Driver, "database", cfg.DBName, "host", cfg.DBAddr)
	} else {
		logger.Log.Infow("Store connection established", "driver", cfg.Driver, "path", cfg.StorePath)
	}
	return store, nil
}

func mysqlDSN(cfg config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Net = "tcp"
	mc.Addr = cfg.DBAddr
	mc.DBName = cfg.DBName
	return mc.FormatDSN()
}
