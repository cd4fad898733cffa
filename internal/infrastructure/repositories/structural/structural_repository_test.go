//go:build unit

package structural_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/credpatch/internal/infrastructure/repositories/structural"
)

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestRepository_Name(t *testing.T) {
	t.Parallel()

	t.Run("should return structural", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()

		// when
		name := repo.Name()

		// then
		assert.Equal(t, "structural", name)
	})
}

func TestRepository_Patch(t *testing.T) {
	t.Parallel()

	t.Run("should add options object to single-argument call", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := "fetch('/api/x');\n"

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "fetch('/api/x', { credentials: 'include' });\n", result)
	})

	t.Run("should add property to inline options object", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := "async function remove(id) {\n  await fetch(`/api/items/${id}`, { method: 'DELETE' });\n}\n"

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t,
			"async function remove(id) {\n  await fetch(`/api/items/${id}`, { method: 'DELETE', credentials: 'include' });\n}\n",
			result,
		)
	})

	t.Run("should add own line after trailing comma in multi-line object", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := joinLines(
			"async function save(data) {",
			"  const res = await fetch('/api/save', {",
			"    method: 'POST',",
			"    headers: { 'Content-Type': 'application/json' },",
			"    body: JSON.stringify(data),",
			"  });",
			"  return res.json();",
			"}",
			"",
		)

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, joinLines(
			"async function save(data) {",
			"  const res = await fetch('/api/save', {",
			"    method: 'POST',",
			"    headers: { 'Content-Type': 'application/json' },",
			"    body: JSON.stringify(data),",
			"    credentials: 'include',",
			"  });",
			"  return res.json();",
			"}",
			"",
		), result)
	})

	t.Run("should add comma and own line when last property has none", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := joinLines(
			"fetch(url, {",
			"  method: 'PUT',",
			"  body: payload",
			"});",
			"",
		)

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, joinLines(
			"fetch(url, {",
			"  method: 'PUT',",
			"  body: payload,",
			"  credentials: 'include'",
			"});",
			"",
		), result)
	})

	t.Run("should keep trailing comment on the last property line", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := joinLines(
			"fetch(url, {",
			"  method: 'POST', // create",
			"});",
			"",
		)

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, joinLines(
			"fetch(url, {",
			"  method: 'POST', // create",
			"  credentials: 'include',",
			"});",
			"",
		), result)
	})

	t.Run("should fill an empty options object", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := "fetch(url, {});\n"

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "fetch(url, { credentials: 'include' });\n", result)
	})

	t.Run("should patch window.fetch but not other fetch members", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := "window.fetch(url);\napi.fetch(url);\n"

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "window.fetch(url, { credentials: 'include' });\napi.fetch(url);\n", result)
	})

	t.Run("should leave calls it cannot patch safely unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := joinLines(
			"fetch();",
			"fetch(url, options);",
			"fetch(url, { ...defaults, method: 'GET' });",
			"fetch(url, { credentials: 'same-origin' });",
			"fetch(url, { 'credentials': 'omit' });",
			"",
		)

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.NoError(t, err)
		assert.Equal(t, content, result)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := joinLines(
			"fetch('/a');",
			"fetch('/b', { method: 'POST' });",
			"fetch('/c', {",
			"  headers: { Accept: 'application/json' }",
			"});",
			"",
		)
		first, err := repo.Patch(context.Background(), content)
		require.NoError(t, err)

		// when
		second, err := repo.Patch(context.Background(), first)

		// then
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 3, strings.Count(second, "credentials: 'include'"))
	})

	t.Run("should reject source with syntax errors", func(t *testing.T) {
		t.Parallel()

		// given
		repo := structural.NewRepository()
		content := "fetch('/api/x';\n"

		// when
		result, err := repo.Patch(context.Background(), content)

		// then
		require.Error(t, err)
		assert.Empty(t, result)
		assert.Contains(t, err.Error(), "syntax errors")
	})
}
