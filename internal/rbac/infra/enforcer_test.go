package infra_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-hrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnforcer_WildcardPolicies(t *testing.T) {
	e, err := infra.NewEnforcer()
	require.NoError(t, err)

	_, err = e.AddPolicy(infra.RoleSubject("super_admin"), infra.Wildcard, infra.Wildcard)
	require.NoError(t, err)
	_, err = e.AddPolicy(infra.RoleSubject("finance"), "payroll", infra.Wildcard)
	require.NoError(t, err)
	_, err = e.AddGroupingPolicy(infra.UserSubject("u-1"), infra.RoleSubject("finance"))
	require.NoError(t, err)
	_, err = e.AddGroupingPolicy(infra.UserSubject("u-2"), infra.RoleSubject("super_admin"))
	require.NoError(t, err)

	ok, err := e.Enforce(infra.UserSubject("u-2"), "users", "delete")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Enforce(infra.UserSubject("u-1"), "payroll", "process")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Enforce(infra.UserSubject("u-1"), "users", "read")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubjects_DoNotCollide(t *testing.T) {
	assert.NotEqual(t, infra.UserSubject("admin"), infra.RoleSubject("admin"))
	assert.Equal(t, "user:admin", infra.UserSubject("admin"))
	assert.Equal(t, "role:admin", infra.RoleSubject("admin"))
}

func TestNewEnforcerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.conf")
	require.NoError(t, os.WriteFile(path, []byte(infra.ModelText), 0o600))

	e, err := infra.NewEnforcerFromFile(path)
	require.NoError(t, err)

	_, err = e.AddPolicy("employee", "leaves", "create")
	require.NoError(t, err)
	ok, err := e.Enforce("employee", "leaves", "create")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewEnforcerFromFile_Missing(t *testing.T) {
	_, err := infra.NewEnforcerFromFile(filepath.Join(t.TempDir(), "nope.conf"))
	assert.Error(t, err)
}
