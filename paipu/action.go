package paipu

// Action 牌谱动作，按显式标签分发，不做运行时类型名反射
type Action interface {
	actionKind() string
}

// MeldKind 副露类型
type MeldKind int32

const (
	MeldChi       MeldKind = iota // 吃
	MeldPon                       // 碰
	MeldDaiminkan                 // 大明杠
)

// KanKind 自杠类型
type KanKind int32

const (
	KanConcealed KanKind = iota // 暗杠
	KanAdded                    // 加杠
)

// LiujuKind 途中流局类型，按固定优先级解释
type LiujuKind int32

const (
	LiujuUnknown     LiujuKind = 0
	LiujuKyuushu     LiujuKind = 1 // 九种九牌
	LiujuSuufonRenda LiujuKind = 2 // 四风连打
)

// NewRoundAction 开局：chang为场风序号，ju为局序号(同时是庄家座位)
type NewRoundAction struct {
	Chang    int32
	Ju       int32
	Ben      int32 // 本场
	Liqibang int32 // 场上立直棒
	Scores   []int32
	Doras    []Tile
	Tiles    [4][]Tile // 起手，庄家14张
}

type DiscardAction struct {
	Seat      int32
	Tile      Tile
	Tsumogiri bool // 摸切
	Riichi    bool // 立直宣言
	Doras     []Tile
}

type DealTileAction struct {
	Seat  int32
	Tile  Tile
	Doras []Tile // 杠后翻新dora时携带
}

// MeldAction 鸣他家的牌；被鸣的牌固定放在Tiles末位
type MeldAction struct {
	Seat  int32
	Kind  MeldKind
	Tiles []Tile
}

// SelfKanAction 暗杠/加杠，Tile为宣言牌
type SelfKanAction struct {
	Seat int32
	Kind KanKind
	Tile Tile
}

// KitaAction 三麻拔北
type KitaAction struct {
	Seat int32
}

// Fan 一个役种及其飜数(役满时为倍数)
type Fan struct {
	ID  int32
	Val int32
}

// WinRecord 单个和牌者的申报结果
type WinRecord struct {
	Seat    int32
	Zimo    bool
	Fu      int32
	Han     int32
	Yiman   bool // 役满
	Fans    []Fan
	LiDoras []Tile // 里宝
}

// HuleAction 和了，双响/三响时携带多个WinRecord
type HuleAction struct {
	Wins []*WinRecord
}

// NoTileAction 荒牌流局
type NoTileAction struct {
	Liujumanguan bool      // 流し満貫
	Tenpai       []bool    // 各座位听牌状态
	DeltaHints   [][]int32 // 流中记录自带的分数变动(可能多组，求和)
}

// LiujuAction 途中流局
type LiujuAction struct {
	Kind LiujuKind
}

// UnknownAction 无法识别的记录，分发时跳过并告警
type UnknownAction struct {
	Name string
}

func (*NewRoundAction) actionKind() string { return "newround" }
func (*DiscardAction) actionKind() string  { return "discard" }
func (*DealTileAction) actionKind() string { return "deal" }
func (*MeldAction) actionKind() string     { return "meld" }
func (*SelfKanAction) actionKind() string  { return "selfkan" }
func (*KitaAction) actionKind() string     { return "kita" }
func (*HuleAction) actionKind() string     { return "hule" }
func (*NoTileAction) actionKind() string   { return "notile" }
func (*LiujuAction) actionKind() string    { return "liuju" }
func (a *UnknownAction) actionKind() string {
	return a.Name
}
