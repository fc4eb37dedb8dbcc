package paipu

import "strconv"

// 雀魂役种表中触发包牌的两个役满
const (
	fanDaisangen  = 37 // 大三元
	fanDaisuushii = 50 // 大四喜
)

// CeilToHundred 所有点数运算的统一进位，只用整数
func CeilToHundred(x int64) int64 {
	return (x + 99) / 100 * 100
}

func floorToHundred(x int64) int64 {
	return x / 100 * 100
}

// tsumoLoss 三麻自摸损关闭时的补偿项
func (o *Options) tsumoLoss(x int64) int64 {
	if o.TsumoLossOff {
		return CeilToHundred(x)
	}
	return 0
}

// basePoints 由符/飜得到基础点；5飜以下为符×2^(2+飜)，封顶满贯
func basePoints(fu, han int32, kiriage bool) int64 {
	switch {
	case han >= 13:
		return 8000 // 数え役満
	case han >= 11:
		return 6000 // 三倍満
	case han >= 8:
		return 4000 // 倍満
	case han >= 6:
		return 3000 // 跳満
	case han >= 5:
		return 2000 // 満貫
	}
	base := int64(fu) << (2 + uint(han))
	if base >= 2000 {
		return 2000
	}
	if kiriage && ((han == 4 && fu == 30) || (han == 3 && fu == 60)) {
		return 2000 // 切り上げ満貫
	}
	return base
}

const yakumanBase = 8000

// 役满得分表 [庄家赢/子家赢][庄家付, 子家付, 荣和]
var yakumanScore = [2][3]int64{
	{0, 16000, 48000},
	{16000, 8000, 32000},
}

const (
	payOya = 0
	payKo  = 1
	payRon = 2
)

// resolveWin 结算一名和牌者；first表示本局中第一个(头跳)结算者，
// 立直棒与本场只归头跳者所有
func (k *Kyoku) resolveWin(w *WinRecord, opts *Options, first bool) ([]int64, []any) {
	qinjia := w.Seat == k.dealer

	var base int64
	if w.Yiman {
		var multi int64
		for _, f := range w.Fans {
			multi += int64(f.Val)
		}
		base = yakumanBase * multi
	} else {
		base = basePoints(w.Fu, w.Han, opts.Kiriage)
	}

	var hb, rp int64
	if first {
		hb = 100 * int64(k.round[1])
		if k.nriichi != -1 {
			rp = 1000 * int64(k.nriichi+int(k.round[2]))
		}
	}

	// 包牌
	pao := false
	liableSeat := int32(-1)
	var liableFor int64
	if w.Yiman {
		for _, f := range w.Fans {
			if f.ID == fanDaisuushii && k.paoWind != -1 {
				pao = true
				liableSeat = k.paoWind
				liableFor += int64(f.Val)
			} else if f.ID == fanDaisangen && k.paoDrag != -1 {
				pao = true
				liableSeat = k.paoDrag
				liableFor += int64(f.Val)
			}
		}
	}

	np := int64(k.nplayers)
	delta := make([]int64, k.nplayers)
	var points string

	if w.Zimo {
		if qinjia { // 庄家自摸
			xian := CeilToHundred(2 * base)
			for i := range delta {
				delta[i] = -hb - xian - opts.tsumoLoss(xian/2)
			}
			delta[w.Seat] = rp + (np-1)*(hb+xian) + 2*opts.tsumoLoss(xian/2)
			points = strconv.FormatInt(xian+opts.tsumoLoss(xian/2), 10)
		} else { // 子家自摸
			xian := CeilToHundred(base)
			qin := CeilToHundred(2 * base)
			for i := range delta {
				delta[i] = -hb - xian - opts.tsumoLoss(xian/2)
			}
			delta[w.Seat] = rp + hb + qin + (np-2)*(hb+xian) + 2*opts.tsumoLoss(xian/2)
			delta[k.dealer] = -hb - qin - opts.tsumoLoss(xian/2)
			points = strconv.FormatInt(xian, 10) + "-" + strconv.FormatInt(qin, 10)
		}
	} else { // 荣和
		factor := int64(4)
		if qinjia {
			factor = 6
		}
		rong := CeilToHundred(factor * base)
		delta[w.Seat] = rp + (np-1)*hb + rong
		delta[k.ldseat] -= (np-1)*hb + rong
		points = strconv.FormatInt(rong, 10)
		k.nriichi = -1 // 立直棒已领取，双响时防止重复发放
	}

	res := []any{int(w.Seat), int(k.winSource(w)), int(w.Seat)}

	if pao {
		// 视为责任座位向其他座位偿还役满部分
		res[2] = int(liableSeat)
		row := payKo
		if qinjia {
			row = payOya
		}
		if w.Zimo {
			// 责任者退还其余付家的役满份额；退还总额原路记回责任者，保证各座增减相抵
			var repaid int64
			if qinjia {
				unit := liableFor * yakumanScore[payOya][payKo]
				for i := range delta {
					if int32(i) != liableSeat && int32(i) != w.Seat {
						refund := hb + unit + opts.tsumoLoss(unit/2)
						delta[i] += refund
						repaid += refund
					}
				}
				if k.nplayers == 3 && !opts.TsumoLossOff {
					// 北家缺席的那份由责任者补给庄家
					delta[w.Seat] += unit
					repaid += unit
				}
			} else {
				unitKo := liableFor * yakumanScore[payKo][payKo]
				unitOya := liableFor * yakumanScore[payKo][payOya]
				for i := range delta {
					if int32(i) == liableSeat || int32(i) == w.Seat {
						continue
					}
					refund := hb + unitKo + opts.tsumoLoss(unitKo/2)
					if int32(i) == k.dealer {
						refund = hb + unitOya + opts.tsumoLoss(unitKo/2)
					}
					delta[i] += refund
					repaid += refund
				}
			}
			delta[liableSeat] -= repaid
		} else {
			// 责任座位向放铳座位支付半役满加全部本场
			half := liableFor * yakumanScore[row][payRon] / 2
			delta[liableSeat] -= (np-1)*hb + half
			delta[k.ldseat] += (np-1)*hb + half
		}
	}

	points += runePoints.Get(LangJP)
	if w.Zimo && qinjia {
		points += runeAll.Get(opts.Lang)
	}

	res = append(res, scoreLabel(w, points, opts))
	for _, f := range w.Fans {
		paren := strconv.Itoa(int(f.Val)) + runeHan.Get(LangJP)
		if w.Yiman {
			paren = runeYakuman.Get(LangJP)
		}
		res = append(res, fanName(f.ID, opts.Lang)+"("+paren+")")
	}

	return padDelta(delta), res
}

// scoreLabel 打点段位标签与点数字符串
func scoreLabel(w *WinRecord, points string, opts *Options) string {
	fuhan := strconv.Itoa(int(w.Fu)) + runeFu.Get(opts.Lang) +
		strconv.Itoa(int(w.Han)) + runeHan.Get(opts.Lang)
	prefix := ""
	if opts.ShowFu {
		prefix = fuhan
	}
	switch {
	case w.Yiman:
		return prefix + runeYakuman.Get(opts.Lang) + points
	case w.Han >= 13:
		return prefix + runeKazoeYakuman.Get(opts.Lang) + points
	case w.Han >= 11:
		return prefix + runeSanbaiman.Get(opts.Lang) + points
	case w.Han >= 8:
		return prefix + runeBaiman.Get(opts.Lang) + points
	case w.Han >= 6:
		return prefix + runeHaneman.Get(opts.Lang) + points
	case w.Han >= 5 || (w.Han >= 4 && w.Fu >= 40) || (w.Han >= 3 && w.Fu >= 70):
		return prefix + runeMangan.Get(opts.Lang) + points
	case opts.Kiriage && ((w.Han == 4 && w.Fu == 30) || (w.Han == 3 && w.Fu == 60)):
		return prefix + runeKiriageMangan.Get(opts.Lang) + points
	default:
		return fuhan + points
	}
}

func (k *Kyoku) winSource(w *WinRecord) int32 {
	if w.Zimo {
		return w.Seat
	}
	return k.ldseat
}

func padDelta(delta []int64) []int64 {
	res := make([]int64, 4)
	copy(res, delta)
	return res
}

// resolveHule 和了终局：多家和牌按头跳顺序结算，只有头跳者拿立直棒与本场
func (k *Kyoku) resolveHule(a *HuleAction, opts *Options) []any {
	var uras []Tile
	for _, w := range a.Wins {
		if len(w.LiDoras) > len(uras) {
			// 取最长的里宝列表，双响中立直家与默听家并存
			uras = w.LiDoras
		}
	}

	wins := orderByPriority(a.Wins, k.ldseat)
	payload := []any{runeAgari.Get(LangJP)}
	for i, w := range wins {
		delta, res := k.resolveWin(w, opts, i == 0)
		payload = append(payload, delta, res)
	}

	entry := k.dump(uras)
	return append(entry, payload)
}

// orderByPriority 距放铳者逆时针最近的和牌者优先(头跳)
func orderByPriority(wins []*WinRecord, ldseat int32) []*WinRecord {
	if len(wins) < 2 {
		return wins
	}
	ordered := append([]*WinRecord(nil), wins...)
	dist := func(seat int32) int32 {
		return (seat - ldseat + 4) % 4
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && dist(ordered[j].Seat) < dist(ordered[j-1].Seat); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}

// 荒牌流局的听/不听支付额，按听牌数与不听人数查表。
// 3人不听各付900是沿用已发布牌谱的历史取整，差额+300是兼容约定，不得修正
var (
	tenpaiGain = [4]int64{0, 3000, 1500, 1000}
	notenPay   = [4]int64{0, 3000, 1500, 900}
)

func (k *Kyoku) resolveNoTile(a *NoTileAction, opts *Options) []any {
	delta := make([]int64, 4)

	switch {
	case len(a.DeltaHints) > 0:
		// 记录自带分数变动(流满可能多组，求和)
		for _, hints := range a.DeltaHints {
			for i, v := range hints {
				if i < 4 {
					delta[i] += int64(v)
				}
			}
		}
	case len(a.Tenpai) > 0:
		n := 0
		for _, t := range a.Tenpai {
			if t {
				n++
			}
		}
		if n > 0 && n < k.nplayers {
			payers := k.nplayers - n
			for i := 0; i < k.nplayers && i < len(a.Tenpai); i++ {
				if a.Tenpai[i] {
					delta[i] = floorToHundred(tenpaiGain[n])
				} else {
					delta[i] = -floorToHundred(notenPay[payers])
				}
			}
		}
	}
	// 全员(无)听时流中不带分数变动，按零处理，已知的数据缺口

	name := runeRyuukyoku
	if a.Liujumanguan {
		name = runeNagashiMangan
	}
	return append(k.dump(nil), []any{name.Get(opts.Lang), delta})
}

// resolveLiuju 途中流局子类型，固定优先级，首个命中生效
func (k *Kyoku) resolveLiuju(a *LiujuAction, opts *Options) []any {
	var name labelSet
	switch {
	case a.Kind == LiujuKyuushu:
		name = runeKyuushuKyuuhai
	case a.Kind == LiujuSuufonRenda:
		name = runeSuufonRenda
	case k.nriichi == 4:
		name = runeSuuchaRiichi
	case k.nkan >= 4 && len(k.kanSeats) > 1:
		// 一家四杠是四杠子的继续条件，只有多家开杠才是四開槓
		name = runeSuukaikan
	default:
		// 记录流中拿不到真实原因时的兜底
		name = runeSanchahou
	}
	return append(k.dump(nil), []any{name.Get(opts.Lang)})
}
