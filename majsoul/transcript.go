package majsoul

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kevin-chtw/tw_paipu/paipu"
)

var ErrNotTranscript = errors.New("not a json transcript")

// Transcript 一场完整牌谱的JSON导出：头部加按序的记录信封
type Transcript struct {
	Head    Head       `json:"head"`
	Records []Envelope `json:"records"`
}

func ParseTranscript(raw []byte) (*Transcript, error) {
	if len(raw) == 0 || raw[0] != '{' {
		// 二进制外壳只能列出记录名，转换需要JSON导出
		return nil, ErrNotTranscript
	}
	var t Transcript
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return &t, nil
}

// TranscriptDecoder 把JSON导出解成动作流与对局信息。
// RoomNames是mode_id到段位场显示名的映射，可为nil
type TranscriptDecoder struct {
	RoomNames map[int32]string
}

func (d *TranscriptDecoder) Decode(raw []byte) ([]paipu.Action, *paipu.MatchInfo, error) {
	t, err := ParseTranscript(raw)
	if err != nil {
		return nil, nil, err
	}
	actions, err := DecodeActions(t.Records)
	if err != nil {
		return nil, nil, err
	}
	return actions, t.Head.Info(d.RoomNames), nil
}

// WireRecord 二进制牌谱中的一条记录：名字加未解码的正文
type WireRecord struct {
	Name string
	Body []byte
}

// ListRecords 展开二进制牌谱的两层外壳，列出全部记录。
// 正文是protobuf原文，字段语义随客户端版本走，这里不做解释
func ListRecords(b []byte) ([]WireRecord, error) {
	_, data, err := SplitWrapper(b)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = b
	}
	blobs, err := SplitRecords(data)
	if err != nil {
		return nil, err
	}
	records := make([]WireRecord, 0, len(blobs))
	for _, blob := range blobs {
		name, body, err := SplitWrapper(blob)
		if err != nil {
			return nil, err
		}
		records = append(records, WireRecord{Name: name, Body: body})
	}
	return records, nil
}
