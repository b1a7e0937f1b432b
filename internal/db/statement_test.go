package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tingly-dev/bot-admin/internal/typ"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestOptionFieldsCoercesBooleans(t *testing.T) {
	op := typ.OperateBacktest
	fields := optionFields(typ.BotOptions{
		Name:        strPtr("Foo"),
		Enable:      boolPtr(true),
		ShortOrder:  boolPtr(false),
		OperateType: &op,
	})

	assert.Equal(t, []Field{
		{Column: ColName, Value: "Foo"},
		{Column: ColEnable, Value: int64(1)},
		{Column: ColShortOrder, Value: int64(0)},
		{Column: ColOperateType, Value: "backtest"},
	}, fields)
}

func TestInsertFieldsAppendsRegistered(t *testing.T) {
	fields := insertFields(typ.BotOptions{Name: strPtr("Foo")}, 1700000000)
	require.Len(t, fields, 2)
	assert.Equal(t, Field{Column: ColRegistered, Value: int64(1700000000)}, fields[1])
}

func TestBuildInsert(t *testing.T) {
	stmt, err := BuildInsert([]Field{
		{Column: ColName, Value: "Foo"},
		{Column: ColEnable, Value: int64(0)},
		{Column: ColRegistered, Value: int64(42)},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO bot (name, enable, registered, token) VALUES (?1, ?2, ?3, hex(randomblob(16)))",
		stmt.SQL)
	assert.Equal(t, []any{"Foo", int64(0), int64(42)}, stmt.Args)
}

func TestBuildInsertRejects(t *testing.T) {
	_, err := BuildInsert(nil)
	require.Error(t, err)
	assert.True(t, typ.IsKind(err, typ.KindValidation))

	_, err = BuildInsert([]Field{{Column: ColToken, Value: "abc"}})
	require.Error(t, err)
	assert.True(t, typ.IsKind(err, typ.KindValidation))
}

func TestBuildUpdate(t *testing.T) {
	stmt, err := BuildUpdate(5, []Field{
		{Column: ColDescription, Value: "new"},
		{Column: ColLongOrder, Value: int64(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE bot SET description = ?2, long_order = ?3 WHERE id = ?1", stmt.SQL)
	assert.Equal(t, []any{int64(5), "new", int64(1)}, stmt.Args)
}

func TestBuildUpdateRejects(t *testing.T) {
	_, err := BuildUpdate(5, nil)
	require.Error(t, err)
	assert.True(t, typ.IsKind(err, typ.KindValidation))

	for _, col := range []string{ColID, ColToken, ColRegistered} {
		_, err := BuildUpdate(5, []Field{{Column: col, Value: "x"}})
		require.Error(t, err, col)
		assert.True(t, typ.IsKind(err, typ.KindValidation), col)
	}
}

func TestBuildReadAndDelete(t *testing.T) {
	get := BuildGet(3)
	assert.Equal(t,
		"SELECT id, name, description, enable, registered, token, long_order, short_order, operate_type FROM bot WHERE id = ?1",
		get.SQL)
	assert.Equal(t, []any{int64(3)}, get.Args)

	list := BuildList()
	assert.Equal(t,
		"SELECT id, name, description, enable, registered, token, long_order, short_order, operate_type FROM bot",
		list.SQL)
	assert.Empty(t, list.Args)

	del := BuildDelete(9)
	assert.Equal(t, "DELETE FROM bot WHERE id = ?1", del.SQL)
	assert.Equal(t, []any{int64(9)}, del.Args)
}
