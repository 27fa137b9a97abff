package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Every column the User model writes must also be one the migrator
// creates, otherwise registration breaks on a fresh database.
func TestUserSchemaColumnsAreAllMigratable(t *testing.T) {
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	_, hasPlaintext := s.FieldsByDBName["password"]
	assert.False(t, hasPlaintext, "plaintext password must not map to a column")

	hash, ok := s.FieldsByDBName["password_hash"]
	require.True(t, ok)
	assert.True(t, hash.Creatable)

	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		assert.False(t, f.IgnoreMigration && (f.Creatable || f.Updatable),
			"field %s is writable but excluded from migration", f.Name)
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	u := User{Email: "guest@example.com"}

	require.NoError(t, u.HashPassword("hunter2!"))
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "hunter2!", u.PasswordHash)

	assert.NoError(t, u.CheckPassword("hunter2!"))
	assert.Error(t, u.CheckPassword("wrong-password"))
}
