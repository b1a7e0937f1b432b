package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tingly-dev/bot-admin/internal/typ"
)

func sampleList() typ.BotList {
	return typ.BotList{Bot: []typ.Bot{
		{ID: 1, Name: "Foo", Description: "Bar", Enable: true, Registered: 1700000000, Token: "AA", OperateType: "backtest"},
		{ID: 2, Name: "Baz", Description: "Qux", Enable: false, Registered: 1700000001, Token: "BB", LongOrder: true},
	}}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleList()))

	out := buf.String()
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))

	var decoded typ.BotList
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sampleList(), decoded)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	bot := sampleList().Bot[1]
	require.NoError(t, Write(&buf, FormatYAML, bot))

	assert.Contains(t, buf.String(), "enable: false\n")
	assert.Contains(t, buf.String(), "long_order: true\n")

	var decoded typ.Bot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, bot, decoded)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("xml"), sampleList())
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
