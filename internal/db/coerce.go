package db

import (
	"github.com/tingly-dev/bot-admin/internal/typ"
)

// Field is one column/value pair destined for a write statement
type Field struct {
	Column string
	Value  any
}

// boolToInt maps a flag to its stored representation
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// optionFields returns the supplied options as ordered fields, booleans stored as 1/0.
// Absent options produce no field.
func optionFields(opts typ.BotOptions) []Field {
	fields := make([]Field, 0, 6)
	if opts.Name != nil {
		fields = append(fields, Field{Column: ColName, Value: *opts.Name})
	}
	if opts.Description != nil {
		fields = append(fields, Field{Column: ColDescription, Value: *opts.Description})
	}
	if opts.Enable != nil {
		fields = append(fields, Field{Column: ColEnable, Value: boolToInt(*opts.Enable)})
	}
	if opts.LongOrder != nil {
		fields = append(fields, Field{Column: ColLongOrder, Value: boolToInt(*opts.LongOrder)})
	}
	if opts.ShortOrder != nil {
		fields = append(fields, Field{Column: ColShortOrder, Value: boolToInt(*opts.ShortOrder)})
	}
	if opts.OperateType != nil {
		fields = append(fields, Field{Column: ColOperateType, Value: string(*opts.OperateType)})
	}
	return fields
}

// insertFields is optionFields plus the registration timestamp
func insertFields(opts typ.BotOptions, registered int64) []Field {
	return append(optionFields(opts), Field{Column: ColRegistered, Value: registered})
}
