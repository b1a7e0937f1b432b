package db

// BotTableName is the table holding bot records
const BotTableName = "bot"

// BotRecord is the GORM model describing the bot table schema.
// Rows are read and written through the statement builders; the model only
// drives table creation and counting.
type BotRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Name        string `gorm:"column:name;type:text;not null"`
	Description string `gorm:"column:description;type:text;not null"`
	Enable      int64  `gorm:"column:enable;type:integer;not null;default:0"`
	Registered  int64  `gorm:"column:registered;type:integer;not null"`
	Token       string `gorm:"column:token;type:text;not null;uniqueIndex"`
	LongOrder   int64  `gorm:"column:long_order;type:integer;not null;default:0"`
	ShortOrder  int64  `gorm:"column:short_order;type:integer;not null;default:0"`
	OperateType string `gorm:"column:operate_type;type:text;not null;default:''"`
}

// TableName specifies the table name for GORM
func (BotRecord) TableName() string {
	return BotTableName
}
