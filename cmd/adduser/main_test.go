package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"finwise/internal/logger"
	"finwise/internal/models"
	"finwise/internal/testutil"
)

func init() {
	logger.Init("test", "error")
}

func opener(db *gorm.DB) func() (*gorm.DB, func() error, error) {
	return func() (*gorm.DB, func() error, error) {
		return db, func() error { return nil }, nil
	}
}

func TestRun_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stdout := new(bytes.Buffer)

	args := []string{"-email", "Ops@Example.com", "-user", "ops", "-password", "correcthorse"}
	err := run(args, new(bytes.Buffer), stdout, new(bytes.Buffer), opener(db))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "User ops created successfully")

	var user models.User
	require.NoError(t, db.Where("username = ?", "ops").First(&user).Error)
	assert.True(t, user.IsVerified)
	assert.Equal(t, "ops@example.com", user.Email)
	assert.NotEqual(t, "correcthorse", user.Password)
}

func TestRun_PromptsForPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	stdout := new(bytes.Buffer)
	stdin := strings.NewReader("piped-password\n")

	err := run([]string{"-email", "ops@example.com", "-user", "ops"}, stdin, stdout, new(bytes.Buffer), opener(db))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Password: ")
}

func TestRun_DuplicateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	args := []string{"-email", "ops@example.com", "-user", "ops", "-password", "correcthorse"}

	require.NoError(t, run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer), opener(db)), "first run should succeed")

	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer), opener(db))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_Validation(t *testing.T) {
	openCalled := false
	open := func() (*gorm.DB, func() error, error) {
		openCalled = true
		return nil, nil, nil
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"-user", "ops"}, "missing required flags"},
		{"short password", []string{"-email", "ops@example.com", "-user", "ops", "-password", "short"}, "at least 8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer), open)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.False(t, openCalled, "database should not be opened for invalid input")

	t.Run("empty stdin", func(t *testing.T) {
		err := run([]string{"-email", "ops@example.com", "-user", "ops"}, strings.NewReader(""), new(bytes.Buffer), new(bytes.Buffer), open)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read password")
	})
}
