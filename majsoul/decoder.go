package majsoul

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kevin-chtw/tw_paipu/paipu"
)

// Envelope 一条已解包的记录：短名(如"RecordNewRound"，允许带".lq."前缀)加JSON正文
type Envelope struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// 雀魂的副露/自杠类型码
const (
	callChi       = 0
	callPon       = 1
	callDaiminkan = 2
	kanAdded      = 2
	kanConcealed  = 3
)

type recordNewRound struct {
	Chang    int32    `json:"chang"`
	Ju       int32    `json:"ju"`
	Ben      int32    `json:"ben"`
	Liqibang int32    `json:"liqibang"`
	Scores   []int32  `json:"scores"`
	Dora     string   `json:"dora"`
	Doras    []string `json:"doras"`
	Tiles0   []string `json:"tiles0"`
	Tiles1   []string `json:"tiles1"`
	Tiles2   []string `json:"tiles2"`
	Tiles3   []string `json:"tiles3"`
}

type recordDiscardTile struct {
	Seat   int32    `json:"seat"`
	Tile   string   `json:"tile"`
	Moqie  bool     `json:"moqie"`
	IsLiqi bool     `json:"is_liqi"`
	IsWlqi bool     `json:"is_wliqi"`
	Doras  []string `json:"doras"`
}

type recordDealTile struct {
	Seat  int32    `json:"seat"`
	Tile  string   `json:"tile"`
	Doras []string `json:"doras"`
}

type recordChiPengGang struct {
	Seat  int32    `json:"seat"`
	Type  int32    `json:"type"`
	Tiles []string `json:"tiles"`
}

type recordAnGangAddGang struct {
	Seat  int32  `json:"seat"`
	Type  int32  `json:"type"`
	Tiles string `json:"tiles"` // 仅一张宣言牌
}

type recordBaBei struct {
	Seat int32 `json:"seat"`
}

type recordFan struct {
	ID  int32 `json:"id"`
	Val int32 `json:"val"`
}

type recordHuleOne struct {
	Seat    int32       `json:"seat"`
	Zimo    bool        `json:"zimo"`
	Fu      int32       `json:"fu"`
	Count   int32       `json:"count"`
	Yiman   bool        `json:"yiman"`
	Fans    []recordFan `json:"fans"`
	LiDoras []string    `json:"li_doras"`
}

type recordHule struct {
	Hules []recordHuleOne `json:"hules"`
}

type recordNoTile struct {
	Liujumanguan bool `json:"liujumanguan"`
	Players      []struct {
		Tenpai bool `json:"tenpai"`
	} `json:"players"`
	Scores []struct {
		DeltaScores []int32 `json:"delta_scores"`
	} `json:"scores"`
}

type recordLiuJu struct {
	Type int32 `json:"type"`
}

// DecodeActions 按序把记录信封解码为动作流
func DecodeActions(envs []Envelope) ([]paipu.Action, error) {
	actions := make([]paipu.Action, 0, len(envs))
	for i, env := range envs {
		a, err := decodeRecord(env.Name, env.Data)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, env.Name, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func decodeRecord(name string, data []byte) (paipu.Action, error) {
	short := name
	if i := strings.LastIndexByte(short, '.'); i >= 0 {
		short = short[i+1:]
	}

	switch short {
	case "RecordNewRound":
		var r recordNewRound
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return r.action()
	case "RecordDiscardTile":
		var r recordDiscardTile
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		tile, err := paipu.ParseTile(r.Tile)
		if err != nil {
			return nil, err
		}
		doras, err := paipu.ParseTiles(r.Doras)
		if err != nil {
			return nil, err
		}
		return &paipu.DiscardAction{
			Seat:      r.Seat,
			Tile:      tile,
			Tsumogiri: r.Moqie,
			Riichi:    r.IsLiqi || r.IsWlqi,
			Doras:     doras,
		}, nil
	case "RecordDealTile":
		var r recordDealTile
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		tile, err := paipu.ParseTile(r.Tile)
		if err != nil {
			return nil, err
		}
		doras, err := paipu.ParseTiles(r.Doras)
		if err != nil {
			return nil, err
		}
		return &paipu.DealTileAction{Seat: r.Seat, Tile: tile, Doras: doras}, nil
	case "RecordChiPengGang":
		var r recordChiPengGang
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		tiles, err := paipu.ParseTiles(r.Tiles)
		if err != nil {
			return nil, err
		}
		var kind paipu.MeldKind
		switch r.Type {
		case callChi:
			kind = paipu.MeldChi
		case callPon:
			kind = paipu.MeldPon
		case callDaiminkan:
			kind = paipu.MeldDaiminkan
		default:
			return &paipu.UnknownAction{Name: fmt.Sprintf("%s/type=%d", short, r.Type)}, nil
		}
		return &paipu.MeldAction{Seat: r.Seat, Kind: kind, Tiles: tiles}, nil
	case "RecordAnGangAddGang":
		var r recordAnGangAddGang
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		tile, err := paipu.ParseTile(r.Tiles)
		if err != nil {
			return nil, err
		}
		var kind paipu.KanKind
		switch r.Type {
		case kanConcealed:
			kind = paipu.KanConcealed
		case kanAdded:
			kind = paipu.KanAdded
		default:
			return &paipu.UnknownAction{Name: fmt.Sprintf("%s/type=%d", short, r.Type)}, nil
		}
		return &paipu.SelfKanAction{Seat: r.Seat, Kind: kind, Tile: tile}, nil
	case "RecordBaBei":
		var r recordBaBei
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &paipu.KitaAction{Seat: r.Seat}, nil
	case "RecordHule":
		var r recordHule
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return r.action()
	case "RecordNoTile":
		var r recordNoTile
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		a := &paipu.NoTileAction{Liujumanguan: r.Liujumanguan}
		for _, p := range r.Players {
			a.Tenpai = append(a.Tenpai, p.Tenpai)
		}
		for _, s := range r.Scores {
			if len(s.DeltaScores) > 0 {
				a.DeltaHints = append(a.DeltaHints, s.DeltaScores)
			}
		}
		return a, nil
	case "RecordLiuJu":
		var r recordLiuJu
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &paipu.LiujuAction{Kind: paipu.LiujuKind(r.Type)}, nil
	default:
		return &paipu.UnknownAction{Name: short}, nil
	}
}

func (r *recordNewRound) action() (paipu.Action, error) {
	a := &paipu.NewRoundAction{
		Chang:    r.Chang,
		Ju:       r.Ju,
		Ben:      r.Ben,
		Liqibang: r.Liqibang,
		Scores:   r.Scores,
	}

	// 旧记录只有单张dora，新记录给doras列表
	var err error
	if r.Dora != "" {
		d, err := paipu.ParseTile(r.Dora)
		if err != nil {
			return nil, err
		}
		a.Doras = []paipu.Tile{d}
	} else if a.Doras, err = paipu.ParseTiles(r.Doras); err != nil {
		return nil, err
	}

	for i, hand := range [][]string{r.Tiles0, r.Tiles1, r.Tiles2, r.Tiles3} {
		if a.Tiles[i], err = paipu.ParseTiles(hand); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (r *recordHule) action() (paipu.Action, error) {
	a := &paipu.HuleAction{}
	for _, h := range r.Hules {
		uras, err := paipu.ParseTiles(h.LiDoras)
		if err != nil {
			return nil, err
		}
		w := &paipu.WinRecord{
			Seat:    h.Seat,
			Zimo:    h.Zimo,
			Fu:      h.Fu,
			Han:     h.Count,
			Yiman:   h.Yiman,
			LiDoras: uras,
		}
		for _, f := range h.Fans {
			w.Fans = append(w.Fans, paipu.Fan{ID: f.ID, Val: f.Val})
		}
		a.Wins = append(a.Wins, w)
	}
	return a, nil
}
