package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tcb/config"
	"tcb/database"
	"tcb/models"
)

func newSweeperDb(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedJobUpdatedAt(t *testing.T, db *gorm.DB, status string, age time.Duration) models.Job {
	t.Helper()
	job := models.Job{Status: status}
	require.NoError(t, db.Create(&job).Error)
	stamp := time.Now().Add(-age)
	require.NoError(t, db.Model(&job).UpdateColumn("updated_at", stamp).Error)
	return job
}

func TestSweepStaleJobs(t *testing.T) {
	db := newSweeperDb(t)
	timeout := time.Duration(config.AppConfig.JobTimeoutMin) * time.Minute

	stalePending := seedJobUpdatedAt(t, db, models.JobStatusPending, timeout+time.Hour)
	staleRunning := seedJobUpdatedAt(t, db, models.JobStatusRunning, timeout+time.Hour)
	freshRunning := seedJobUpdatedAt(t, db, models.JobStatusRunning, time.Minute)
	oldCompleted := seedJobUpdatedAt(t, db, models.JobStatusCompleted, timeout+time.Hour)

	SweepStaleJobs()

	for _, id := range []string{stalePending.ID, staleRunning.ID} {
		var job models.Job
		require.NoError(t, db.First(&job, "id = ?", id).Error)
		assert.Equal(t, models.JobStatusFailed, job.Status)
		require.NotNil(t, job.ErrorMessage)
		assert.Equal(t, "Job timed out", *job.ErrorMessage)
		assert.NotNil(t, job.CompletedAt)
	}

	var fresh models.Job
	require.NoError(t, db.First(&fresh, "id = ?", freshRunning.ID).Error)
	assert.Equal(t, models.JobStatusRunning, fresh.Status)

	var done models.Job
	require.NoError(t, db.First(&done, "id = ?", oldCompleted.ID).Error)
	assert.Equal(t, models.JobStatusCompleted, done.Status)
	assert.Nil(t, done.ErrorMessage)
}

func TestSweepStaleJobs_NothingStale(t *testing.T) {
	db := newSweeperDb(t)
	seedJobUpdatedAt(t, db, models.JobStatusPending, time.Minute)

	SweepStaleJobs()

	var count int64
	require.NoError(t, db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusFailed).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
