package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tingly-dev/bot-admin/internal/output"
	"github.com/tingly-dev/bot-admin/internal/typ"
)

var boolChoices = []string{"true", "false"}

// EnumValue is a string flag restricted to a fixed set of values
type EnumValue struct {
	allowed []string
	value   string
}

var _ pflag.Value = (*EnumValue)(nil)

func NewEnumValue(allowed ...string) *EnumValue {
	return &EnumValue{allowed: allowed}
}

func (e *EnumValue) String() string {
	return e.value
}

func (e *EnumValue) Set(v string) error {
	for _, a := range e.allowed {
		if v == a {
			e.value = v
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

func (e *EnumValue) Type() string {
	return strings.Join(e.allowed, "|")
}

// BotFlags holds the bot field flags shared by add and update
type BotFlags struct {
	Name        string
	Description string
	Enable      *EnumValue
	LongOrder   *EnumValue
	ShortOrder  *EnumValue
	Operation   *EnumValue
}

func operateChoices() []string {
	choices := make([]string, 0, len(typ.OperateTypes))
	for _, op := range typ.OperateTypes {
		choices = append(choices, string(op))
	}
	return choices
}

// AddBotFlags adds all bot field flags to a command.
// When required is set, name, description and enable are marked required.
func AddBotFlags(cmd *cobra.Command, flags *BotFlags, required bool) {
	flags.Enable = NewEnumValue(boolChoices...)
	flags.LongOrder = NewEnumValue(boolChoices...)
	flags.ShortOrder = NewEnumValue(boolChoices...)
	flags.Operation = NewEnumValue(operateChoices()...)

	cmd.Flags().StringVar(&flags.Name, "name", "", "Bot name")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Bot description")
	cmd.Flags().Var(flags.Enable, "enable", "Whether the bot is enabled")
	cmd.Flags().Var(flags.LongOrder, "long_order", "Whether the bot may place long orders")
	cmd.Flags().Var(flags.ShortOrder, "short_order", "Whether the bot may place short orders")
	cmd.Flags().Var(flags.Operation, "operation", "How the bot is operated")

	if required {
		cmd.MarkFlagRequired("name")
		cmd.MarkFlagRequired("description")
		cmd.MarkFlagRequired("enable")
	}
}

// ResolveBotOptions keeps only the flags the user actually passed
func ResolveBotOptions(cmd *cobra.Command, flags BotFlags) typ.BotOptions {
	var opts typ.BotOptions
	changed := cmd.Flags().Changed

	if changed("name") {
		name := flags.Name
		opts.Name = &name
	}
	if changed("description") {
		description := flags.Description
		opts.Description = &description
	}
	if changed("enable") {
		opts.Enable = enumBool(flags.Enable)
	}
	if changed("long_order") {
		opts.LongOrder = enumBool(flags.LongOrder)
	}
	if changed("short_order") {
		opts.ShortOrder = enumBool(flags.ShortOrder)
	}
	if changed("operation") {
		op := typ.OperateType(flags.Operation.String())
		opts.OperateType = &op
	}
	return opts
}

func enumBool(e *EnumValue) *bool {
	b := e.String() == "true"
	return &b
}

// OutputFlags holds the mutually exclusive output format flags
type OutputFlags struct {
	JSON bool
	YAML bool
}

// AddOutputFlags adds --json/--yaml; exactly one must be given
func AddOutputFlags(cmd *cobra.Command, flags *OutputFlags) {
	cmd.Flags().BoolVarP(&flags.JSON, "json", "j", false, "json mode: output group")
	cmd.Flags().BoolVarP(&flags.YAML, "yaml", "y", false, "yaml mode: output group")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
	cmd.MarkFlagsOneRequired("json", "yaml")
}

// Format returns the selected output format
func (f OutputFlags) Format() output.Format {
	if f.JSON {
		return output.FormatJSON
	}
	return output.FormatYAML
}
