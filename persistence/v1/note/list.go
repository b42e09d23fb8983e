package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/mustafa892/notes-app/sys"
)

func List(ctx context.Context) ([]Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, listKey).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get listing from cache: ", err.Error())
	}
	if get != "" {
		var notes []Note
		if err := json.Unmarshal([]byte(get), &notes); err != nil {
			logger.Error("error parsing cached response for key ", listKey, ": ", err.Error())
		} else {
			return notes, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, title, description, important, updatedAt, createdAt FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()
	rows, err := stmt.QueryContext(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]Note, 0)
	for rows.Next() {
		var note Note
		var important int64
		if err := rows.Scan(&note.Id, &note.Title, &note.Description, &important, &note.UpdatedAt, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		note.Important = important != 0
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading list rows: %w", err)
	}

	if data, err := json.Marshal(notes); err != nil {
		logger.Error("error parsing data to cache for key ", listKey, ": ", err.Error())
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()

		if err := cache.Set(tcCtx, listKey, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set listing into cache: ", err.Error())
		}
	}

	return notes, nil
}
