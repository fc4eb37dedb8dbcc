package paipu

import (
	"strconv"
	"strings"
)

// 天凤的摸切符号
const tsumogiriSymbol = 60

// Kyoku 单局累积状态，每局新建，终局动作产出条目后即废弃
type Kyoku struct {
	nplayers   int
	round      [3]int32 // [局序号, 本场, 立直棒]
	initScores []int32  // 补齐4座
	doras      []Tile
	haipais    [4][]Tile
	draws      [4][]any // 牌码int或副露记号string
	discards   [4][]any // 牌码int、记号string或大明杠补位0
	dealer     int32
	poppedTile Tile  // 庄家第14张，视为首摸
	ldseat     int32 // 最后打牌的座位
	nriichi    int   // 本局立直数；-1表示立直棒已被领取
	nkan       int
	kanSeats   map[int32]struct{} // 开过杠的座位，区分四开杠
	nowinds    [4]int             // 各座位明风牌组数
	nodrags    [4]int             // 各座位明三元牌组数
	paoWind    int32              // 提供第4组风牌的座位
	paoDrag    int32              // 提供第3组三元牌的座位
}

func newKyoku(a *NewRoundAction) *Kyoku {
	k := &Kyoku{
		nplayers:   len(a.Scores),
		round:      [3]int32{4*a.Chang + a.Ju, a.Ben, a.Liqibang},
		initScores: padScores(a.Scores, 4),
		doras:      append([]Tile(nil), a.Doras...),
		dealer:     a.Ju,
		poppedTile: TileNull,
		ldseat:     -1,
		kanSeats:   make(map[int32]struct{}),
		paoWind:    -1,
		paoDrag:    -1,
	}
	for i := range k.haipais {
		k.haipais[i] = append([]Tile(nil), a.Tiles[i]...)
		k.draws[i] = make([]any, 0)
		k.discards[i] = make([]any, 0)
	}

	// 庄家手牌中的最后一张视为摸牌，统一成"13张+摸牌"模型
	if h := k.haipais[k.dealer]; len(h) > 0 {
		k.poppedTile = h[len(h)-1]
		k.haipais[k.dealer] = h[:len(h)-1]
		k.draws[k.dealer] = append(k.draws[k.dealer], int(k.poppedTile))
	}
	return k
}

func padScores(scores []int32, n int) []int32 {
	res := make([]int32, n)
	copy(res, scores)
	return res
}

// dump 导出本局的固定布局前缀：局信息、起始分、宝牌、里宝、四座(手牌,摸牌,打牌)
func (k *Kyoku) dump(uras []Tile) []any {
	entry := []any{k.round, k.initScores, tilesToInts(k.doras), tilesToInts(uras)}
	for i := range k.haipais {
		entry = append(entry, tilesToInts(k.haipais[i]), k.draws[i], k.discards[i])
	}
	return entry
}

func (k *Kyoku) refreshDoras(doras []Tile) {
	if len(doras) > len(k.doras) {
		k.doras = append([]Tile(nil), doras...)
	}
}

func (k *Kyoku) recordDiscard(a *DiscardAction) {
	symbol := int(a.Tile)
	if a.Tsumogiri {
		symbol = tsumogiriSymbol
	}
	// 庄家的第14张被当作摸牌，首次打出同一张时按摸切处理
	if a.Seat == k.dealer && len(k.discards[a.Seat]) == 0 && Tile(symbol) == k.poppedTile {
		symbol = tsumogiriSymbol
	}

	if a.Riichi {
		k.nriichi++
		k.discards[a.Seat] = append(k.discards[a.Seat], "r"+strconv.Itoa(symbol))
	} else {
		k.discards[a.Seat] = append(k.discards[a.Seat], symbol)
	}
	k.ldseat = a.Seat
	k.refreshDoras(a.Doras)
}

func (k *Kyoku) recordDraw(a *DealTileAction) {
	k.refreshDoras(a.Doras)
	k.draws[a.Seat] = append(k.draws[a.Seat], int(a.Tile))
}

// relativeSeating seat1相对seat0的位置: 0上家 1对家 2下家
func relativeSeating(seat0, seat1 int32) int {
	return int((seat0-seat1+4-1)%4)
}

func (k *Kyoku) recordMeld(a *MeldAction) {
	switch a.Kind {
	case MeldChi:
		// 被吃的牌前置并加'c'
		k.draws[a.Seat] = append(k.draws[a.Seat],
			"c"+tileCode(a.Tiles[2])+tileCode(a.Tiles[0])+tileCode(a.Tiles[1]))
	case MeldPon:
		k.countExposedHonor(a.Tiles[0], a.Seat, k.ldseat)
		idx := relativeSeating(a.Seat, k.ldseat)
		k.draws[a.Seat] = append(k.draws[a.Seat], meldNotation(a.Tiles, idx, "p"))
	case MeldDaiminkan:
		k.countExposedHonor(a.Tiles[0], a.Seat, k.ldseat)
		// < 上家0 | 对家1 | 下家3 >
		idx := relativeSeating(a.Seat, k.ldseat)
		if idx == 2 {
			idx = 3
		}
		k.draws[a.Seat] = append(k.draws[a.Seat], meldNotation(a.Tiles, idx, "m"))
		// 天凤在打牌序列中为大明杠补0，保持与摸牌等长
		k.discards[a.Seat] = append(k.discards[a.Seat], 0)
		k.registerKan(a.Seat)
	}
}

// meldNotation 末位为被鸣的牌，按来源方位插回并加前缀
func meldNotation(tiles []Tile, idx int, prefix string) string {
	codes := make([]string, 0, len(tiles))
	for _, t := range tiles[:len(tiles)-1] {
		codes = append(codes, tileCode(t))
	}
	called := prefix + tileCode(tiles[len(tiles)-1])
	codes = append(codes[:idx], append([]string{called}, codes[idx:]...)...)
	return strings.Join(codes, "")
}

func (k *Kyoku) recordSelfKan(a *SelfKanAction) {
	// 抢杠用，不会与上一次打牌冲突
	k.ldseat = a.Seat
	switch a.Kind {
	case KanConcealed:
		k.recordConcealedKan(a.Seat, a.Tile)
	case KanAdded:
		k.recordAddedKan(a.Seat, a.Tile)
	}
}

func (k *Kyoku) recordConcealedKan(seat int32, tile Tile) {
	// 登记该组为可见，但暗杠无人点炮，不设包牌
	k.countExposedHonor(tile, seat, -1)

	// 从起手和摸牌里收齐同种牌，赤宝可能混在其中
	codes := make([]string, 0, 4)
	for _, t := range k.haipais[seat] {
		if t.Deaka() == tile.Deaka() {
			codes = append(codes, tileCode(t))
		}
	}
	for _, d := range k.draws[seat] {
		if code, ok := d.(int); ok && Tile(code).Deaka() == tile.Deaka() {
			codes = append(codes, tileCode(Tile(code)))
		}
	}
	if len(codes) == 0 {
		return
	}
	// 用哪张当暗杠记号无所谓，取最后摸到的
	last := codes[len(codes)-1]
	k.discards[seat] = append(k.discards[seat], strings.Join(codes[:len(codes)-1], "")+"a"+last)
	k.registerKan(seat)
}

func (k *Kyoku) recordAddedKan(seat int32, tile Tile) {
	// 找到此前的碰并升级记号，升级后的记号进入打牌序列
	plain := "p" + tileCode(tile.Deaka())
	red := "p" + tileCode(tile.Makeaka())
	for _, d := range k.draws[seat] {
		naki, ok := d.(string)
		if !ok {
			continue
		}
		if strings.Contains(naki, plain) || strings.Contains(naki, red) {
			k.discards[seat] = append(k.discards[seat],
				strings.Replace(naki, "p", "k"+tileCode(tile), 1))
			k.registerKan(seat)
			return
		}
	}
}

func (k *Kyoku) recordKita(a *KitaAction) {
	// 天凤不标记北是第几摸到的
	k.discards[a.Seat] = append(k.discards[a.Seat], "f44")
}

func (k *Kyoku) registerKan(seat int32) {
	k.nkan++
	k.kanSeats[seat] = struct{}{}
}

// countExposedHonor 每次碰/大明杠/暗杠计数明役牌组；
// 某座位的风牌组到4或三元牌组到3时，记下提供触发那组的座位
func (k *Kyoku) countExposedHonor(tile Tile, owner, feeder int32) {
	switch {
	case tile.IsWind():
		k.nowinds[owner]++
		if k.nowinds[owner] == 4 {
			k.paoWind = feeder
		}
	case tile.IsDragon():
		k.nodrags[owner]++
		if k.nodrags[owner] == 3 {
			k.paoDrag = feeder
		}
	}
}

func tileCode(t Tile) string {
	return strconv.Itoa(int(t))
}
