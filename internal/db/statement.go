package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tingly-dev/bot-admin/internal/typ"
)

// Column names of the bot table
const (
	ColID          = "id"
	ColName        = "name"
	ColDescription = "description"
	ColEnable      = "enable"
	ColRegistered  = "registered"
	ColToken       = "token"
	ColLongOrder   = "long_order"
	ColShortOrder  = "short_order"
	ColOperateType = "operate_type"
)

// BotColumns is the fixed select order used for positional row scanning
var BotColumns = []string{
	ColID, ColName, ColDescription, ColEnable, ColRegistered,
	ColToken, ColLongOrder, ColShortOrder, ColOperateType,
}

// tokenExpr lets storage generate the token at insert time
const tokenExpr = "hex(randomblob(16))"

// immutable columns are never written by update
var immutableColumns = map[string]bool{
	ColID:         true,
	ColToken:      true,
	ColRegistered: true,
}

// Statement is a SQL text with its bound arguments, in placeholder order
type Statement struct {
	SQL  string
	Args []any
}

// BuildInsert builds an INSERT for the given fields plus a generated token.
// Columns and placeholders come from the same slice so their order always agrees.
func BuildInsert(fields []Field) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, typ.NewValidationError("add", errors.New("no fields to insert"))
	}

	columns := make([]string, 0, len(fields)+1)
	placeholders := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		if f.Column == ColToken || f.Column == ColID {
			return Statement{}, typ.NewValidationError("add", fmt.Errorf("column %s cannot be set", f.Column))
		}
		columns = append(columns, f.Column)
		placeholders = append(placeholders, fmt.Sprintf("?%d", i+1))
		args = append(args, f.Value)
	}
	columns = append(columns, ColToken)
	placeholders = append(placeholders, tokenExpr)

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		BotTableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return Statement{SQL: sql, Args: args}, nil
}

// BuildUpdate builds an UPDATE of the given fields for one bot.
// The id binds to ?1 and the SET values to ?2 onwards.
func BuildUpdate(id int64, fields []Field) (Statement, error) {
	if len(fields) == 0 {
		return Statement{}, typ.NewValidationError("update", errors.New("no fields to update"))
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	args = append(args, id)
	for i, f := range fields {
		if immutableColumns[f.Column] {
			return Statement{}, typ.NewValidationError("update", fmt.Errorf("column %s cannot be updated", f.Column))
		}
		assignments = append(assignments, fmt.Sprintf("%s = ?%d", f.Column, i+2))
		args = append(args, f.Value)
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?1",
		BotTableName, strings.Join(assignments, ", "), ColID)
	return Statement{SQL: sql, Args: args}, nil
}

func BuildDelete(id int64) Statement {
	return Statement{
		SQL:  fmt.Sprintf("DELETE FROM %s WHERE %s = ?1", BotTableName, ColID),
		Args: []any{id},
	}
}

func BuildGet(id int64) Statement {
	return Statement{
		SQL:  fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?1", strings.Join(BotColumns, ", "), BotTableName, ColID),
		Args: []any{id},
	}
}

// BuildList selects every row; no ordering is imposed
func BuildList() Statement {
	return Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(BotColumns, ", "), BotTableName),
	}
}
