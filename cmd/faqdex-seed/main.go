// Command faqdex-seed loads a QA JSON file into Redis for the redis source driver.
package main

import (
	"context"
	"flag"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/faqdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	"github.com/kailas-cloud/faqdex/internal/repository/qafile"
	"github.com/kailas-cloud/faqdex/internal/repository/qaredis"
)

func main() {
	var (
		file     = flag.String("file", "qa_data.json", "path to the QA JSON file")
		addr     = flag.String("addr", "localhost:6379", "redis address (comma-separated for a cluster)")
		password = flag.String("password", "", "redis password")
		prefix   = flag.String("prefix", "faqdex:", "key prefix")
		reset    = flag.Bool("reset", false, "delete existing QA keys before seeding")
	)
	flag.Parse()

	logger, err := logpkg.NewLogger("local", "")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	pairs, err := qafile.New(*file).Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load QA pairs", zap.Error(err))
	}
	if len(pairs) == 0 {
		logger.Fatal("No QA pairs to seed", zap.String("file", *file))
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    strings.Split(*addr, ","),
		Password: *password,
	})
	if err != nil {
		logger.Fatal("Failed to create redis store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		logger.Fatal("Redis not ready", zap.Error(err))
	}

	if *reset {
		keys, err := store.Scan(ctx, qaredis.Pattern(*prefix))
		if err != nil {
			logger.Fatal("Failed to scan existing keys", zap.Error(err))
		}
		for _, key := range keys {
			if err := store.Del(ctx, key); err != nil {
				logger.Fatal("Failed to delete key", zap.String("key", key), zap.Error(err))
			}
		}
		logger.Info("Existing QA keys removed", zap.Int("count", len(keys)))
	}

	for i, p := range pairs {
		fields := map[string]string{
			qaredis.FieldSeq:      strconv.Itoa(i),
			qaredis.FieldQuestion: p.Question,
			qaredis.FieldAnswer:   p.Answer,
		}
		if err := store.HSet(ctx, qaredis.Key(*prefix, i), fields); err != nil {
			logger.Fatal("Failed to write pair", zap.Int("seq", i), zap.Error(err))
		}
	}

	logger.Info("Seeding complete",
		zap.Int("pairs", len(pairs)),
		zap.String("prefix", *prefix),
	)
}
