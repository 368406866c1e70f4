package config

import (
	"context"
	"time"

	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/internal/store"
)

const databaseConnectTimeout = 10 * time.Second

// NewDatabaseOrNil connects to the document store configured via DATABASE_URL.
// A missing or unreachable store is not fatal: the server still boots, the
// diagnostics endpoint reports the store as unavailable, and submissions fail
// with a storage error until the store comes back.
func NewDatabaseOrNil(logger *log.Logger) *store.Store {
	uri := sanitizeEnv(GetValueFromEnvironmentVariable("DATABASE_URL", ""))
	if uri == "" {
		logger.Warn("DATABASE_URL is not set; running without a document store")
		return nil
	}

	dbName := sanitizeEnv(GetValueFromEnvironmentVariable("DATABASE_NAME", "psychsphere"))

	ctx, cancel := context.WithTimeout(context.Background(), databaseConnectTimeout)
	defer cancel()

	st, err := store.Connect(ctx, uri, dbName)
	if err != nil {
		logger.Error("Failed to initialize document store client", "error", err)
		return nil
	}

	if err := st.Ping(ctx); err != nil {
		// The driver reconnects on demand, so keep the handle.
		logger.Warn("Document store ping failed", "error", err)
	} else {
		logger.Info("Document store connected", "database", dbName)
	}

	return st
}

func CloseDatabase(st *store.Store, logger *log.Logger) {
	if st == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := st.Close(ctx); err != nil {
		logger.Error("Failed to close document store", "error", err)
	} else {
		logger.Info("Document store closed successfully")
	}
}
