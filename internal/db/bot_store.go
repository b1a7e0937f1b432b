package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tingly-dev/bot-admin/internal/typ"
)

// BotStore executes one statement per call against the bot table
type BotStore struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	dbPath string
	now    func() time.Time
}

type storeOptions struct {
	create bool
	now    func() time.Time
}

// StoreOption configures OpenBotStore
type StoreOption func(*storeOptions)

// WithCreate allows opening a database file that does not exist yet
func WithCreate() StoreOption {
	return func(o *storeOptions) { o.create = true }
}

// WithClock overrides the clock used for the registration timestamp
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) { o.now = now }
}

// OpenBotStore opens the SQLite database at dbPath
func OpenBotStore(dbPath string, opts ...StoreOption) (*BotStore, error) {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, typ.NewConnectionError("open", errors.New("db path is empty"))
	}

	if o.create {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
			return nil, typ.NewConnectionError("open", fmt.Errorf("failed to create db dir: %w", err))
		}
	} else if _, err := os.Stat(dbPath); err != nil {
		return nil, typ.NewConnectionError("open", fmt.Errorf("unable to open database file %s: %w", dbPath, err))
	}

	logrus.Debugf("Opening SQLite database for bot store: %s", dbPath)
	dsn := dbPath + "?_busy_timeout=5000"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, typ.NewConnectionError("open", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, typ.NewConnectionError("open", err)
	}
	logrus.Debugf("SQLite database opened successfully for bot store")

	return &BotStore{
		db:     gdb,
		sqlDB:  sqlDB,
		dbPath: dbPath,
		now:    o.now,
	}, nil
}

func (s *BotStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Path returns the database file path
func (s *BotStore) Path() string {
	return s.dbPath
}

// EnsureSchema creates the bot table when it is missing. An existing table is left untouched.
func (s *BotStore) EnsureSchema() error {
	migrator := s.db.Migrator()
	if migrator.HasTable(&BotRecord{}) {
		logrus.Debugf("Table %s already exists", BotTableName)
		return nil
	}
	if err := migrator.CreateTable(&BotRecord{}); err != nil {
		return statementError("init", err)
	}
	logrus.Debugf("Created table %s", BotTableName)
	return nil
}

// Add inserts a new bot and returns its id. Storage assigns id and token;
// registered is stamped from the store clock.
func (s *BotStore) Add(ctx context.Context, opts typ.BotOptions) (int64, error) {
	if err := opts.ValidateForAdd(); err != nil {
		return 0, err
	}

	stmt, err := BuildInsert(insertFields(opts, s.now().Unix()))
	if err != nil {
		return 0, err
	}
	res, err := s.exec(ctx, "add", stmt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, statementError("add", err)
	}
	return id, nil
}

// Update writes only the supplied fields of the bot with the given id
func (s *BotStore) Update(ctx context.Context, id int64, opts typ.BotOptions) error {
	if err := opts.ValidateForUpdate(); err != nil {
		return err
	}

	stmt, err := BuildUpdate(id, optionFields(opts))
	if err != nil {
		return err
	}
	res, err := s.exec(ctx, "update", stmt)
	if err != nil {
		return err
	}
	return requireAffected(res, "update", id)
}

// Remove deletes the bot with the given id
func (s *BotStore) Remove(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, "remove", BuildDelete(id))
	if err != nil {
		return err
	}
	return requireAffected(res, "remove", id)
}

// Get returns the bot with the given id
func (s *BotStore) Get(ctx context.Context, id int64) (*typ.Bot, error) {
	stmt := BuildGet(id)
	logrus.Debugf("Executing get: %s (%d args)", stmt.SQL, len(stmt.Args))

	bot, err := scanBot(s.sqlDB.QueryRowContext(ctx, stmt.SQL, stmt.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, typ.NewNotFoundError("get", id)
		}
		return nil, statementError("get", err)
	}
	return &bot, nil
}

// List returns every bot in storage iteration order
func (s *BotStore) List(ctx context.Context) ([]typ.Bot, error) {
	stmt := BuildList()
	logrus.Debugf("Executing list: %s", stmt.SQL)

	rows, err := s.sqlDB.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, statementError("list", err)
	}
	defer rows.Close()

	bots := []typ.Bot{}
	for rows.Next() {
		bot, err := scanBot(rows)
		if err != nil {
			return nil, statementError("list", err)
		}
		bots = append(bots, bot)
	}
	if err := rows.Err(); err != nil {
		return nil, statementError("list", err)
	}
	return bots, nil
}

// Count returns the number of bots
func (s *BotStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&BotRecord{}).Count(&count).Error; err != nil {
		return 0, statementError("count", err)
	}
	return count, nil
}

func (s *BotStore) exec(ctx context.Context, op string, stmt Statement) (sql.Result, error) {
	logrus.Debugf("Executing %s: %s (%d args)", op, stmt.SQL, len(stmt.Args))
	res, err := s.sqlDB.ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, statementError(op, err)
	}
	return res, nil
}

func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return statementError(op, err)
	}
	if n == 0 {
		return typ.NewNotFoundError(op, id)
	}
	return nil
}

func statementError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		logrus.Debugf("SQLite error during %s: code=%d extended=%d", op, sqliteErr.Code, sqliteErr.ExtendedCode)
	}
	return typ.NewStatementError(op, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBot maps a row selected with BotColumns onto a Bot.
// NULL reads as the zero value and any nonzero flag reads as true.
func scanBot(row rowScanner) (typ.Bot, error) {
	var (
		bot                                   typ.Bot
		name, description, token, operateType sql.NullString
		enable, longOrder, shortOrder         sql.NullInt64
		registered                            sql.NullInt64
	)
	if err := row.Scan(&bot.ID, &name, &description, &enable, &registered,
		&token, &longOrder, &shortOrder, &operateType); err != nil {
		return bot, err
	}

	bot.Name = name.String
	bot.Description = description.String
	bot.Enable = enable.Int64 != 0
	bot.Registered = registered.Int64
	bot.Token = token.String
	bot.LongOrder = longOrder.Int64 != 0
	bot.ShortOrder = shortOrder.Int64 != 0
	bot.OperateType = operateType.String
	return bot, nil
}
