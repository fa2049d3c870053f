package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront-admin/storefront-admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()
	for _, setting := range settings {
		err := db.Create(&setting).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		seedData      []models.Setting
		expectedError error
		expectedValue string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingName:   "stripeEnabled",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			settingName:   "",
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingName:   "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:        "successful get",
			dbParam:     db,
			settingName: "currency",
			seedData: []models.Setting{
				{Name: "currency", Value: "usd"},
			},
			expectedValue: "usd",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			setting, err := Get(tc.dbParam, tc.settingName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, setting)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, setting)
				assert.Equal(t, tc.settingName, setting.Name)
				assert.Equal(t, tc.expectedValue, setting.Value)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "stripeEnabled", Value: "true"},
		{Name: "currency", Value: "usd"},
	})

	settings, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, settings, 2)

	_, err = GetAll(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "paypalMode", "sandbox")
	require.NoError(t, err)
	assert.Equal(t, "paypalMode", created.Name)
	assert.Equal(t, "sandbox", created.Value)

	_, err = Create(db, "paypalMode", "live")
	require.ErrorIs(t, err, ErrSettingAlreadyExists)

	_, err = Create(db, "", "x")
	require.ErrorIs(t, err, ErrSettingNameEmpty)

	_, err = Create(nil, "paypalMode", "sandbox")
	require.ErrorIs(t, err, ErrDBNil)
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	// Upsert on a missing key creates it
	created, err := Set(db, "stripeEnabled", "false")
	require.NoError(t, err)
	assert.Equal(t, "false", created.Value)

	// Upsert on an existing key updates it in place
	updated, err := Set(db, "stripeEnabled", "true")
	require.NoError(t, err)
	assert.Equal(t, "true", updated.Value)
	assert.Equal(t, created.ID, updated.ID)

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateByName(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "currency", Value: "usd"},
	})

	updated, err := UpdateByName(db, "currency", "eur")
	require.NoError(t, err)
	assert.Equal(t, "eur", updated.Value)

	_, err = UpdateByName(db, "missing", "x")
	require.ErrorIs(t, err, ErrSettingNotFound)
}

func TestDeleteByName(t *testing.T) {
	db := setupTestDB(t)

	seedSettings(t, db, []models.Setting{
		{Name: "productColorVariants:42", Value: "[]"},
	})

	err := DeleteByName(db, "productColorVariants:42")
	require.NoError(t, err)

	err = DeleteByName(db, "productColorVariants:42")
	require.ErrorIs(t, err, ErrSettingNotFound)

	err = DeleteByName(db, "")
	require.ErrorIs(t, err, ErrSettingNameEmpty)

	err = DeleteByName(nil, "x")
	require.ErrorIs(t, err, ErrDBNil)
}
