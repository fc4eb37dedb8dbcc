package paipu

import (
	"encoding/json"
	"strconv"
	"time"
)

// Document 天凤格式文档，字段布局是与tenhou.net/5查看器的兼容契约
type Document struct {
	Log   [][]any   `json:"log"`
	Rule  Rule      `json:"rule"`
	Name  [4]string `json:"name"`
	Title [2]string `json:"title"`
}

// Rule 规则显示串与赤牌元数据；无赤规则时输出aka51/52/53=0
type Rule struct {
	Disp  string `json:"disp"`
	Aka   int    `json:"aka,omitempty"`
	Aka51 *int   `json:"aka51,omitempty"`
	Aka52 *int   `json:"aka52,omitempty"`
	Aka53 *int   `json:"aka53,omitempty"`
}

// Account 一个座位的玩家
type Account struct {
	Seat     int32
	Nickname string
}

// MatchInfo 对局级元数据，由外部的拉取/解码层提供
type MatchInfo struct {
	UUID          string
	PlayerCount   int
	ModeID        int32  // 段位/休闲场id
	RoomName      string // 段位场显示名，由调用方按客户端表解析
	RoomID        int32  // 友人场房间号
	ContestUID    int32  // 大会id
	Mode          int32  // 1东风 2东南
	HasDetailRule bool
	DoraCount     int32 // 赤牌数
	HaveZimosun   bool  // 三麻自摸损
	Accounts      []Account
	EndTime       int64 // unix秒
}

// Assemble 纯组装：log条目加上规则串、玩家名、标题
func Assemble(log [][]any, info *MatchInfo, opts *Options) *Document {
	if info == nil {
		info = &MatchInfo{PlayerCount: 4}
	}
	doc := &Document{Log: log}

	ruledisp := ""
	lobby := ""
	if info.PlayerCount == 3 && opts.Lang == LangJP {
		ruledisp += runeSanma.Get(LangJP)
	}
	switch {
	case info.ModeID != 0:
		ruledisp += info.RoomName
	case info.RoomID != 0:
		lobby = ": " + itoa32(info.RoomID)
		ruledisp += runeFriendly.Get(opts.Lang)
	case info.ContestUID != 0:
		lobby = ": " + itoa32(info.ContestUID)
		ruledisp += runeTournament.Get(opts.Lang)
	}
	switch info.Mode {
	case 1:
		ruledisp += runeTonpuu.Get(opts.Lang)
	case 2:
		ruledisp += runeHanchan.Get(opts.Lang)
	}

	if info.ModeID == 0 && info.DoraCount == 0 && info.HasDetailRule {
		if opts.Lang != LangJP {
			ruledisp += runeNoRed.Get(opts.Lang)
		}
		zero := 0
		doc.Rule = Rule{Disp: ruledisp, Aka51: &zero, Aka52: &zero, Aka53: &zero}
	} else {
		if opts.Lang == LangJP {
			ruledisp += runeRed.Get(LangJP)
		}
		doc.Rule = Rule{Disp: ruledisp, Aka: 1}
	}

	for i := range doc.Name {
		doc.Name[i] = "AI"
	}
	for _, a := range info.Accounts {
		if a.Seat >= 0 && a.Seat < 4 {
			doc.Name[a.Seat] = a.Nickname
		}
	}
	if info.PlayerCount == 3 {
		doc.Name[3] = ""
	}

	doc.Title = [2]string{
		ruledisp + lobby,
		time.Unix(info.EndTime, 0).Format("2006/01/02 15:04:05"),
	}
	return doc
}

// Encode 序列化为查看器可读的JSON
func (d *Document) Encode(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}

func itoa32(v int32) string {
	return strconv.Itoa(int(v))
}
