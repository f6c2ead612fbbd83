package models

import (
	"testing"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/models/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, s string) values.Name {
	t.Helper()
	n, err := values.NewName(s)
	require.NoError(t, err)
	return n
}

func mustPhone(t *testing.T, s string) values.Phone {
	t.Helper()
	p, err := values.NewPhone(s)
	require.NoError(t, err)
	return p
}

func newIvan(t *testing.T) *Contact {
	t.Helper()
	c, err := NewContact(mustName(t, "Ivan"), mustPhone(t, "0671234567"))
	require.NoError(t, err)
	return c
}

func TestNewContact_RejectsDuplicatePhones(t *testing.T) {
	_, err := NewContact(mustName(t, "Ivan"), mustPhone(t, "0671234567"), mustPhone(t, "+380671234567"))
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Equal(t, "Phone already exists", err.Error())
}

func TestContact_AddPhone(t *testing.T) {
	c := newIvan(t)

	require.NoError(t, c.AddPhone(mustPhone(t, "0501112233")))
	assert.Len(t, c.Phones(), 2)

	err := c.AddPhone(mustPhone(t, "380671234567"))
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Len(t, c.Phones(), 2, "failed add must not change the list")
}

func TestContact_AddPhones_StopsAtFirstFailure(t *testing.T) {
	c := newIvan(t)

	err := c.AddPhones(mustPhone(t, "0501112233"), mustPhone(t, "0671234567"), mustPhone(t, "0991112233"))
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	got := c.Phones()
	require.Len(t, got, 2)
	assert.Equal(t, "+380501112233", got[1].String())
}

func TestContact_EditPhone(t *testing.T) {
	c := newIvan(t)
	require.NoError(t, c.AddPhone(mustPhone(t, "0501112233")))

	t.Run("replaces in place", func(t *testing.T) {
		require.NoError(t, c.EditPhone(mustPhone(t, "0671234567"), mustPhone(t, "0631234567")))
		got := c.Phones()
		assert.Equal(t, "+380631234567", got[0].String())
		assert.Equal(t, "+380501112233", got[1].String())
	})

	t.Run("missing previous", func(t *testing.T) {
		err := c.EditPhone(mustPhone(t, "0000000000"), mustPhone(t, "0991112233"))
		require.ErrorIs(t, err, common.ErrNotFound)
		assert.Equal(t, "Phone +380000000000 not found", err.Error())
	})

	t.Run("new already present", func(t *testing.T) {
		err := c.EditPhone(mustPhone(t, "0631234567"), mustPhone(t, "0501112233"))
		require.ErrorIs(t, err, common.ErrAlreadyExists)
	})

	t.Run("no-op edit fails", func(t *testing.T) {
		p := mustPhone(t, "0631234567")
		err := c.EditPhone(p, p)
		require.ErrorIs(t, err, common.ErrAlreadyExists)
	})
}

func TestContact_DeletePhone(t *testing.T) {
	c := newIvan(t)

	assert.False(t, c.DeletePhone(mustPhone(t, "0501112233")))
	assert.True(t, c.DeletePhone(mustPhone(t, "+380671234567")))
	assert.Empty(t, c.Phones())
}

func TestContact_Setters(t *testing.T) {
	c := newIvan(t)

	e, err := values.NewEmail("Ivan@Example.com")
	require.NoError(t, err)
	c.SetEmail(&e)
	require.NotNil(t, c.Email())
	assert.Equal(t, "ivan@example.com", c.Email().String())

	c.SetEmail(nil)
	assert.Nil(t, c.Email())
}

func TestContact_IsMatching(t *testing.T) {
	c := newIvan(t)
	e, err := values.NewEmail("ivan@example.com")
	require.NoError(t, err)
	c.SetEmail(&e)
	a, err := values.NewAddress("Kyiv, Khreschatyk 1")
	require.NoError(t, err)
	c.SetAddress(&a)
	b, err := values.NewBirthday("05.03.1991")
	require.NoError(t, err)
	c.SetBirthday(&b)

	tests := []struct {
		query string
		want  bool
	}{
		{"*van", true},
		{"ivan", true},
		{"IVAN", true},
		{"iva", false},
		{"I*", true},
		{"*1234567", true},
		{"+380671234567", true},
		{"*@example.com", true},
		{"kyiv*", true},
		{"05.03.1991", true},
		{"*.03.*", true},
		{"05x03x1991", false},
		{"*petro*", false},
		{"(*", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsMatching(tt.query), tt.query)
	}
}

func TestContact_String(t *testing.T) {
	c := newIvan(t)
	assert.Equal(t, "Contact name: Ivan, phones: +380671234567", c.String())

	c.DeletePhone(mustPhone(t, "0671234567"))
	assert.Equal(t, "Contact name: Ivan, phones: -", c.String())
}
