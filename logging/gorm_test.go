package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{})

	ctx := ContextWithRequestID(context.Background(), "req-7")
	stmt := func() (string, int64) { return "SELECT * FROM recipes", 3 }
	l := NewGormLogger(100 * time.Millisecond)

	l.Trace(ctx, time.Now(), stmt, errors.New("no such table: recipes"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT * FROM recipes"`)
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.Contains(t, buf.String(), `"message":"query failed"`)

	buf.Reset()
	l.Trace(ctx, time.Now().Add(-time.Second), stmt, nil)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"message":"slow query"`)

	buf.Reset()
	l.Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), stmt, gorm.ErrDuplicatedKey)
	l.Trace(ctx, time.Now(), stmt, nil)
	assert.Empty(t, buf.String())
}

func TestGormLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{})

	ctx := context.Background()
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	verbose := NewGormLogger(0).LogMode(gormlogger.Info)
	verbose.Trace(ctx, time.Now(), stmt, nil)
	verbose.Info(ctx, "migrating %s", "recipes")
	assert.Contains(t, buf.String(), `"message":"query"`)
	assert.Contains(t, buf.String(), `"message":"migrating recipes"`)

	buf.Reset()
	silent := NewGormLogger(0).LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), stmt, errors.New("boom"))
	silent.Error(ctx, "boom")
	assert.Empty(t, buf.String())
}
