package jobs

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lendstock.GO/engine"
	"lendstock.GO/store"
)

// Jobs build their own engine from env so this package stays importable from
// config without a cycle.
var (
	initOnce  sync.Once
	jobEngine *engine.Engine
	initErr   error
)

func getEngine() (*engine.Engine, error) {
	initOnce.Do(func() {
		var st store.Store
		if addr := os.Getenv("REDIS_ADDR"); addr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASS")})
			st = store.NewRedisStore(rdb)
		} else {
			path := os.Getenv("LENDSTOCK_DB")
			if path == "" {
				path = "lendstock.db"
			}
			db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			if err != nil {
				initErr = err
				return
			}
			st, initErr = store.NewGormStore(db)
			if initErr != nil {
				return
			}
		}
		jobEngine = engine.New(st)
	})
	return jobEngine, initErr
}

// OverdueSweepJob promotes past-due loans and emits their overdue
// notifications. Idempotent, so overlapping timer fires are harmless.
func OverdueSweepJob(args ...string) {
	eng, err := getEngine()
	if err != nil {
		log.Printf("overduesweep: engine init failed: %v", err)
		return
	}
	res, err := eng.Lending.SweepOverdue(time.Now(), "System")
	if err != nil {
		log.Printf("overduesweep: %v", err)
		return
	}
	if res.Promoted > 0 || res.Notified > 0 {
		log.Printf("overduesweep: promoted=%d notified=%d", res.Promoted, res.Notified)
	}
}

// HistoryPruneJob caps the audit trail at HISTORY_MAX records. Does nothing
// unless the env var is set — retention is opt-in.
func HistoryPruneJob(args ...string) {
	raw := os.Getenv("HISTORY_MAX")
	if raw == "" {
		return
	}
	max, err := strconv.Atoi(raw)
	if err != nil || max <= 0 {
		log.Printf("historyprune: invalid HISTORY_MAX %q", raw)
		return
	}
	eng, err := getEngine()
	if err != nil {
		log.Printf("historyprune: engine init failed: %v", err)
		return
	}
	removed, err := eng.History.Prune(max)
	if err != nil {
		log.Printf("historyprune: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("historyprune: dropped %d record(s)", removed)
	}
}
