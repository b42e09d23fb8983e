package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mustafa892/notes-app/app/messaging/consumers/v1/notes"
	"github.com/mustafa892/notes-app/business/v1/note"
	"github.com/mustafa892/notes-app/persistence/v1/schema"
	"github.com/mustafa892/notes-app/platform/env"
	"github.com/mustafa892/notes-app/platform/logger"
	"github.com/mustafa892/notes-app/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"os"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	topic *pubsub.Topic
}

func TestNote(t *testing.T) {
	log, err := logger.New("Notes-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "localhost:3306")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "NoteMessagingTest")
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()

	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		_ = subscription.Shutdown(context.Background())
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		if err := notes.Consume(withCancel, subscription, 1); err != nil {
			log.Error("listener error: ", err)
		}
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic}

	noteTests.testInsertSuccess(t)
}

func (nt *NoteTests) testInsertSuccess(t *testing.T) {
	event := note.Event{
		Type: "create",
		Data: note.NewNote{
			Title:       "Groceries",
			Description: "Buy milk",
			Important:   true,
		},
	}

	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("Test testInsertSuccess: failed to parse insert request body")
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("Test testInsertSuccess: failed to post message to topic: ", err)
	}

	var found note.Note
	var important int64
	deadline := time.Now().Add(30 * time.Second)
	for {
		row := sys.R.Database.QueryRow("SELECT id, title, description, important FROM notes WHERE id = 1")
		if err := row.Scan(&found.Id, &found.Title, &found.Description, &important); err == nil {
			found.Important = important != 0
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Test testInsertSuccess: consumer did not insert the note in time")
		}
		time.Sleep(100 * time.Millisecond)
	}

	if found.Title != "Groceries" {
		t.Fatalf("Test testInsertSuccess: should have received \"Groceries\" as title: %v", found)
	}

	if found.Description != "Buy milk" {
		t.Fatalf("Test testInsertSuccess: should have received \"Buy milk\" as description: %v", found)
	}

	if !found.Important {
		t.Fatalf("Test testInsertSuccess: should have received important=true: %v", found)
	}
}
