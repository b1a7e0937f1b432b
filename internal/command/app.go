package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tingly-dev/bot-admin/internal/config"
	"github.com/tingly-dev/bot-admin/internal/db"
	"github.com/tingly-dev/bot-admin/internal/typ"
)

// AppContext carries the state shared by every subcommand
type AppContext struct {
	MarkerPath string
	Verbose    bool
	LogFile    string

	storeOptions []db.StoreOption
	logCloser    io.Closer
}

// NewAppContext creates an AppContext; store options apply to every opened store
func NewAppContext(storeOptions ...db.StoreOption) *AppContext {
	return &AppContext{storeOptions: storeOptions}
}

// Close releases the log file opened for --log-file
func (a *AppContext) Close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// OpenStore resolves the database path from the marker file and opens it
func (a *AppContext) OpenStore() (*db.BotStore, error) {
	dbPath, err := config.ReadDBPath(a.MarkerPath)
	if err != nil {
		return nil, err
	}
	return db.OpenBotStore(dbPath, a.storeOptions...)
}

// withStore opens the store, runs fn and closes the store
func (a *AppContext) withStore(fn func(store *db.BotStore) error) error {
	store, err := a.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func parseBotID(op, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, typ.NewValidationError(op, fmt.Errorf("invalid bot id %q", raw))
	}
	return id, nil
}
