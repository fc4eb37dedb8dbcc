package majsoul

import "github.com/kevin-chtw/tw_paipu/paipu"

// Head 牌谱头部，字段名与服务端JSON一致
type Head struct {
	UUID     string `json:"uuid"`
	EndTime  int64  `json:"end_time"`
	Config   Config `json:"config"`
	Accounts []struct {
		Seat     int32  `json:"seat"`
		Nickname string `json:"nickname"`
	} `json:"accounts"`
	Result struct {
		Players []struct {
			Seat       int32 `json:"seat"`
			TotalPoint int32 `json:"total_point"`
		} `json:"players"`
	} `json:"result"`
}

type Config struct {
	Meta struct {
		ModeID     int32 `json:"mode_id"`
		RoomID     int32 `json:"room_id"`
		ContestUID int32 `json:"contest_uid"`
	} `json:"meta"`
	Mode struct {
		Mode       int32 `json:"mode"`
		DetailRule *struct {
			DoraCount   int32 `json:"dora_count"`
			HaveZimosun bool  `json:"have_zimosun"`
		} `json:"detail_rule"`
	} `json:"mode"`
}

// Info 提炼组装层需要的对局信息。
// roomNames是mode_id到段位场显示名的映射，取自客户端配置表，可为nil
func (h *Head) Info(roomNames map[int32]string) *paipu.MatchInfo {
	info := &paipu.MatchInfo{
		UUID:        h.UUID,
		PlayerCount: len(h.Result.Players),
		ModeID:      h.Config.Meta.ModeID,
		RoomName:    roomNames[h.Config.Meta.ModeID],
		RoomID:      h.Config.Meta.RoomID,
		ContestUID:  h.Config.Meta.ContestUID,
		Mode:        h.Config.Mode.Mode,
		EndTime:     h.EndTime,
	}
	if dr := h.Config.Mode.DetailRule; dr != nil {
		info.HasDetailRule = true
		info.DoraCount = dr.DoraCount
		info.HaveZimosun = dr.HaveZimosun
	}
	for _, a := range h.Accounts {
		info.Accounts = append(info.Accounts, paipu.Account{Seat: a.Seat, Nickname: a.Nickname})
	}
	return info
}
