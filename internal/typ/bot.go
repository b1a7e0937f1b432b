package typ

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OperateType represents how a bot is being run
type OperateType string

const (
	OperateBacktest    OperateType = "backtest"
	OperateForwardtest OperateType = "forwardtest"
	OperateProduct     OperateType = "product"
)

// OperateTypes lists the accepted operate types in display order
var OperateTypes = []OperateType{OperateBacktest, OperateForwardtest, OperateProduct}

// Bot is a persisted record describing one trading bot
type Bot struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Enable      bool   `json:"enable" yaml:"enable"`
	Registered  int64  `json:"registered" yaml:"registered"`
	Token       string `json:"token" yaml:"token"`
	LongOrder   bool   `json:"long_order" yaml:"long_order"`
	ShortOrder  bool   `json:"short_order" yaml:"short_order"`
	OperateType string `json:"operate_type" yaml:"operate_type"`
}

// BotList wraps a list of bots for output
type BotList struct {
	Bot []Bot `json:"bot" yaml:"bot"`
}

// BotOptions holds the fields explicitly supplied for one invocation.
// A nil pointer means the field was not given and must not be written.
type BotOptions struct {
	Name        *string
	Description *string
	Enable      *bool
	LongOrder   *bool
	ShortOrder  *bool
	OperateType *OperateType `validate:"omitempty,oneof=backtest forwardtest product"`
}

// IsEmpty reports whether no field was supplied
func (o BotOptions) IsEmpty() bool {
	return o.Name == nil && o.Description == nil && o.Enable == nil &&
		o.LongOrder == nil && o.ShortOrder == nil && o.OperateType == nil
}

// addRequirements are the fields a new bot must carry
type addRequirements struct {
	Name        *string `validate:"required"`
	Description *string `validate:"required"`
	Enable      *bool   `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateForAdd checks the options for creating a bot
func (o BotOptions) ValidateForAdd() error {
	req := addRequirements{Name: o.Name, Description: o.Description, Enable: o.Enable}
	if err := validate.Struct(req); err != nil {
		return NewValidationError("add", describeValidation(err))
	}
	return o.validateValues("add")
}

// ValidateForUpdate checks the options for updating a bot
func (o BotOptions) ValidateForUpdate() error {
	if o.IsEmpty() {
		return NewValidationError("update", errors.New("no fields to update"))
	}
	return o.validateValues("update")
}

func (o BotOptions) validateValues(op string) error {
	if err := validate.Struct(o); err != nil {
		return NewValidationError(op, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("missing required field %s", fieldFlag(fe.Field()))
	case "oneof":
		return fmt.Errorf("invalid value %q for %s (allowed: %s)", fmt.Sprint(fe.Value()), fieldFlag(fe.Field()), fe.Param())
	}
	return err
}

// fieldFlag maps a struct field to the flag a user would type
func fieldFlag(field string) string {
	switch field {
	case "Name":
		return "--name"
	case "Description":
		return "--description"
	case "Enable":
		return "--enable"
	case "LongOrder":
		return "--long_order"
	case "ShortOrder":
		return "--short_order"
	case "OperateType":
		return "--operation"
	}
	return field
}
