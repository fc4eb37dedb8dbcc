package majsoul_test

import (
	"testing"

	"github.com/kevin-chtw/tw_paipu/majsoul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func wrap(name string, data []byte) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, name)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, data)
	return b
}

func Test_SplitWrapper(t *testing.T) {
	payload := []byte{0xde, 0xad}
	name, data, err := majsoul.SplitWrapper(wrap(".lq.RecordNewRound", payload))
	require.NoError(t, err)
	assert.Equal(t, ".lq.RecordNewRound", name)
	assert.Equal(t, payload, data)
}

func Test_SplitWrapperSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, 99)
	b = append(b, wrap("x", nil)...)

	name, _, err := majsoul.SplitWrapper(b)
	require.NoError(t, err)
	assert.Equal(t, "x", name)
}

func Test_SplitWrapperMalformed(t *testing.T) {
	_, _, err := majsoul.SplitWrapper([]byte{0x0a}) // 长度前缀缺失
	assert.ErrorIs(t, err, majsoul.ErrBadWrapper)
}

func Test_ListRecords(t *testing.T) {
	// 旧版records字段与新版actions字段混用
	inner1 := wrap(".lq.RecordNewRound", []byte{1})
	inner2 := wrap(".lq.RecordDiscardTile", []byte{2, 3})

	var details []byte
	details = protowire.AppendTag(details, 1, protowire.BytesType)
	details = protowire.AppendBytes(details, inner1)

	var action []byte
	action = protowire.AppendTag(action, 1, protowire.VarintType)
	action = protowire.AppendVarint(action, 0)
	action = protowire.AppendTag(action, 2, protowire.BytesType)
	action = protowire.AppendBytes(action, inner2)
	details = protowire.AppendTag(details, 3, protowire.BytesType)
	details = protowire.AppendBytes(details, action)

	// 无result的action是操作回执，跳过
	var empty []byte
	empty = protowire.AppendTag(empty, 1, protowire.VarintType)
	empty = protowire.AppendVarint(empty, 1)
	details = protowire.AppendTag(details, 3, protowire.BytesType)
	details = protowire.AppendBytes(details, empty)

	records, err := majsoul.ListRecords(wrap(".lq.GameDetailRecords", details))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ".lq.RecordNewRound", records[0].Name)
	assert.Equal(t, []byte{1}, records[0].Body)
	assert.Equal(t, ".lq.RecordDiscardTile", records[1].Name)
	assert.Equal(t, []byte{2, 3}, records[1].Body)
}
