package note

import (
	"context"
	"fmt"
	"github.com/mustafa892/notes-app/sys"
	"time"
)

func Insert(ctx context.Context, newN NewNote) error {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (title, description, important, updatedAt, createdAt) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()
	_, err = stmt.ExecContext(dbCtx, newN.Title, newN.Description, boolToInt(newN.Important), n, n)
	if err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	// drop the cached listing so the next read sees the new row
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, listKey).Err(); err != nil {
		logger.Error("failure to invalidate listing cache: ", err.Error())
	}

	return nil
}
