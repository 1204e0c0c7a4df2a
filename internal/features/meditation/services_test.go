package meditation_test

import (
	"errors"
	"testing"

	"github.com/candemir/vitalis-backend/internal/features/meditation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestParseSessionContent(t *testing.T) {
	content := "```json\n" + `{
  "duration": "15 minutes",
  "phases": [
    {"name": "Settling in", "duration": "3 minutes", "instruction": "Find a comfortable position"},
    {"name": "Body scan", "duration": "12 minutes", "instruction": "Move attention slowly from head to toe"}
  ],
  "breathingPattern": {"inhale": "4 counts", "hold": "7 counts", "exhale": "8 counts"},
  "focusPoints": ["Breath", "Body sensations"],
  "guidanceLevel": "intermediate"
}` + "\n```"

	sc, err := meditation.ParseSessionContent(content)
	require.NoError(t, err)

	assert.Equal(t, "15 minutes", sc.Duration)
	require.Len(t, sc.Phases, 2)
	assert.Equal(t, "Body scan", sc.Phases[1].Name)
	assert.Equal(t, "7 counts", sc.BreathingPattern.Hold)
	assert.Equal(t, "intermediate", sc.GuidanceLevel)
}

func TestParseSessionContent_NoPhasesRejected(t *testing.T) {
	_, err := meditation.ParseSessionContent(`{"duration": "10 minutes", "phases": []}`)
	assert.Error(t, err)
}

func TestParseSessionContent_Garbage(t *testing.T) {
	_, err := meditation.ParseSessionContent("I cannot produce JSON today")
	assert.Error(t, err)
}

func TestList_ReturnsSessionsAndTotal(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "meditation_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "meditation_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mood", "level"}).
			AddRow(uuid.NewString(), userID.String(), "stressed", "beginner").
			AddRow(uuid.NewString(), userID.String(), "calm", "beginner"))

	svc := meditation.NewSessionService(db, nil)
	sessions, total, err := svc.List(userID, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, sessions, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed count is an error, not a page with total = 0.
func TestList_CountFailureSurfaces(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "meditation_sessions"`).
		WillReturnError(errors.New("relation missing"))

	svc := meditation.NewSessionService(db, nil)
	_, _, err := svc.List(uuid.New(), 20, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count meditation sessions")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultSessionContent(t *testing.T) {
	sc := meditation.DefaultSessionContent()

	assert.Equal(t, "10 minutes", sc.Duration)
	require.Len(t, sc.Phases, 1)
	assert.Equal(t, "Breathing focus", sc.Phases[0].Name)
	assert.Equal(t, "4 counts", sc.BreathingPattern.Inhale)
	assert.Equal(t, []string{"Breath awareness"}, sc.FocusPoints)
	assert.Equal(t, "beginner", sc.GuidanceLevel)
}
