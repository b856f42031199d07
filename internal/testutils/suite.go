package testutils

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"community-portal-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	postgresImage = "postgres"
	postgresTag   = "16-alpine"
	postgresUser  = "portal"
	postgresPass  = "portal"
	postgresDB    = "community_portal_test"
)

// postgresContainer is the one throwaway database shared by every integration suite in a test binary
type postgresContainer struct {
	once   sync.Once
	err    error
	mu     sync.Mutex
	pool   *dockertest.Pool
	res    *dockertest.Resource
	db     *gorm.DB
	tables []string
}

var shared postgresContainer

// TestDB hands an integration suite the migrated database
type TestDB struct {
	DB     *gorm.DB
	tables []string
}

// ConnectTestDB starts the shared container on first use and returns a handle to it.
// The schema is created by database.Initialize, so it always matches the models.
func ConnectTestDB(t *testing.T) *TestDB {
	t.Helper()
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("integration database unavailable: %v", shared.err)
	}
	return &TestDB{DB: shared.db, tables: shared.tables}
}

// Reset empties every model table in a single statement
func (d *TestDB) Reset() {
	if d == nil || d.DB == nil || len(d.tables) == 0 {
		return
	}
	quoted := make([]string, len(d.tables))
	for i, table := range d.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := d.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("failed to reset integration database")
	}
}

// RunIntegration wraps m.Run for a TestMain, removing the container when the run ends
// or is interrupted. It returns the exit code for os.Exit.
func RunIntegration(m *testing.M) int {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-interrupted:
			logrus.WithField("signal", sig.String()).Warn("integration run interrupted")
			shared.stop()
			os.Exit(1)
		case <-done:
		}
	}()

	code := m.Run()
	close(done)
	signal.Stop(interrupted)
	shared.stop()
	return code
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	res, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPass,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("start %s:%s: %w", postgresImage, postgresTag, err)
	}
	c.mu.Lock()
	c.pool, c.res = pool, res
	c.mu.Unlock()
	// Reaped by docker if the binary dies without cleanup
	_ = res.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		postgresUser, postgresPass, res.GetPort("5432/tcp"), postgresDB)
	err = pool.Retry(func() error {
		db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent, MaxOpenConns: 10})
		if err != nil {
			return err
		}
		c.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("migrate integration database: %w", err)
	}

	tables, err := modelTables(c.db)
	if err != nil {
		return err
	}
	c.tables = tables
	logrus.WithFields(logrus.Fields{
		"container": res.Container.Name,
		"tables":    len(tables),
	}).Info("integration database ready")
	return nil
}

func (c *postgresContainer) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		c.db = nil
	}
	if c.pool == nil || c.res == nil {
		return
	}
	if err := c.pool.Purge(c.res); err != nil {
		logrus.WithError(err).WithField("container", c.res.Container.Name).Warn("failed to purge integration database")
	}
	c.pool, c.res = nil, nil
}

// modelTables resolves the table name of every migrated model
func modelTables(db *gorm.DB) ([]string, error) {
	all := database.Models()
	tables := make([]string, 0, len(all))
	for _, model := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}
